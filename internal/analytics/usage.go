// Package analytics reports PII-free usage events for the flowcore CLI:
// which subcommand ran and whether it succeeded, never file contents,
// paths, or fixture data. Reporting is on unless Init is called with
// disableMetrics set, and events are dropped while PublicKey is empty.
package analytics

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/posthog/posthog-go"
)

const (
	// BuildStarted/Completed/Failed track `flowcore build`.
	BuildStarted   = "flowcore:build_started"
	BuildCompleted = "flowcore:build_completed"
	BuildFailed    = "flowcore:build_failed"

	// DomStarted/Completed/Failed track `flowcore dom`.
	DomStarted   = "flowcore:dom_started"
	DomCompleted = "flowcore:dom_completed"
	DomFailed    = "flowcore:dom_failed"

	// LintStarted/Completed/Failed track `flowcore lint`.
	LintStarted   = "flowcore:lint_started"
	LintCompleted = "flowcore:lint_completed"
	LintFailed    = "flowcore:lint_failed"
)

var (
	// PublicKey is the posthog project key; events are dropped when empty.
	PublicKey     string
	enableMetrics bool
	appVersion    string
)

// Init toggles reporting for the process lifetime.
func Init(disableMetrics bool) {
	enableMetrics = !disableMetrics
}

// SetVersion attaches the flowcore version to every subsequent event.
func SetVersion(version string) {
	appVersion = version
}

func envFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".flowcore", ".env"), nil
}

func createEnvFile() {
	envFile, err := envFilePath()
	if err != nil {
		fmt.Println("Error getting user home directory:", err)
		return
	}
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(envFile), os.ModePerm); err != nil {
			fmt.Println("Error creating directory:", err)
			return
		}
		env := map[string]string{"uuid": uuid.New().String()}
		if err := godotenv.Write(env, envFile); err != nil {
			fmt.Println("Error writing to .env file:", err)
		}
	}
}

// LoadEnvFile ensures a per-user anonymous id exists and loads it into the
// process environment as "uuid".
func LoadEnvFile() {
	createEnvFile()
	envFile, err := envFilePath()
	if err != nil {
		return
	}
	_ = godotenv.Load(envFile)
}

// ReportEvent reports event with no additional properties.
func ReportEvent(event string) {
	ReportEventWithProperties(event, nil)
}

// ReportEventWithProperties sends event with extra properties. Callers must
// never pass file paths, fixture contents, or other user data.
func ReportEventWithProperties(event string, properties map[string]interface{}) {
	if !enableMetrics || PublicKey == "" {
		return
	}

	disableGeoIP := false
	client, err := posthog.NewWithConfig(
		PublicKey,
		posthog.Config{
			Endpoint:     "https://us.i.posthog.com",
			DisableGeoIP: &disableGeoIP,
		},
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer client.Close()

	capture := posthog.Capture{
		DistinctId: os.Getenv("uuid"),
		Event:      event,
	}

	captureProperties := posthog.NewProperties()
	captureProperties.Set("os", runtime.GOOS)
	captureProperties.Set("arch", runtime.GOARCH)
	captureProperties.Set("go_version", runtime.Version())
	if appVersion != "" {
		captureProperties.Set("flowcore_version", appVersion)
	}
	for k, v := range properties {
		captureProperties.Set(k, v)
	}
	capture.Properties = captureProperties

	if err := client.Enqueue(capture); err != nil {
		fmt.Println(err)
	}
}
