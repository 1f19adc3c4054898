// Package examples provides reference actuator implementations.
//
// These actuators demonstrate how to satisfy the actuator.Actuator contract
// and are used by the demo binary and the integration tests. Each one
// records the actions it last received so callers can inspect what the
// aggregation layer delivered:
//
//	arm := examples.NewMotor("arm", 2)
//	turret := examples.NewSelector("turret", 3)
//	claw := examples.NewGripper("claw")
//
//	m := actuator.NewManager()
//	m.Add(arm, turret, claw)
//	m.SortByName()
//	m.EnsureBufferSize()
//
// Real actuators follow the same shape: declare slot counts, consume the
// delivered segments inside OnActionReceived without retaining them, and
// clear internal state in Reset.
package examples
