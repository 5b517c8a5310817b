// Package mqtt publishes generic device descriptors to an MQTT broker.
//
// The client publishes each generic device retained and remembers the last
// payload per device; after a reconnect it restores the online status and
// republishes every remembered descriptor. A Last Will marks the service
// offline if the process dies without Close.
//
// # Topics
//
//	qpudev/device/{name}/generic   retained generic device JSON
//	qpudev/system/status           online/offline status, LWT
//
// Downstream schedulers subscribe to qpudev/device/+/generic and receive
// the latest descriptor of every device immediately on subscribe.
//
// # Usage
//
//	client, err := mqtt.Connect(ctx, cfg.MQTT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	reg.SetPublisher(client)
package mqtt
