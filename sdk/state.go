package sdk

// State is the durable key/value store the host runtime exposes to the
// contract. Get returns nil for absent keys. Writes become durable when the
// host commits the surrounding call; a call that fails is rolled back as a
// whole, so implementations never see partial mutations from the engine.
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}
