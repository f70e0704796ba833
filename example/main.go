// Package main demonstrates usage of the xgx-virtstack package.
package main

import (
	"errors"
	"fmt"

	virtstack "github.com/xgx-io/xgx-virtstack"
)

// Three layers, each wrapping once. Every wrap is one frame of the trace.

func openConfig() error {
	// Stand-in for a real os.Open failure.
	return errors.New("open /etc/app.yml: no such file or directory")
}

func loadConfig() error {
	if err := openConfig(); err != nil {
		return virtstack.Wrap(err, "Failed to read configuration file")
	}
	return nil
}

func startService() error {
	if err := loadConfig(); err != nil {
		return virtstack.Wrap(err, "ServiceError: startup aborted")
	}
	return nil
}

func main() {
	err := startService()

	// Concise: what an end user sees. Frame 0's message only.
	fmt.Println(virtstack.Concise(err))
	fmt.Println()

	// Verbose: what a developer asks for explicitly. The chain is walked
	// only now.
	fmt.Println(virtstack.Verbose(err))
	fmt.Println()

	// %+v is the same verbose path through fmt.
	fmt.Printf("%+v\n", err)
}
