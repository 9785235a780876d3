// Package constants defines environment variable names and defaults
// shared by the navstack packages.
package constants

// LogLevelEnvVar raises the internal navstack logger to the given level
// ("debug", "info", "warn", "error") during Init.
const LogLevelEnvVar = "NAVSTACK_LOG_LEVEL"

// BackDeviceEnvVar overrides the input device used for the platform back button.
const BackDeviceEnvVar = "NAVSTACK_BACK_DEVICE"

// DefaultBackDevice is the input device read when no override is given.
const DefaultBackDevice = "/dev/input/event1"

// DefaultLanguage is used for localized messages when none is requested.
const DefaultLanguage = "en"
