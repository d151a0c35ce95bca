//go:build !gcloud

package config

// Validate accepts an empty NATS URL: event publishing is optional locally.
func (c *PubSubConfig) Validate() error {
	return nil
}
