package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"rufflink": mainFunc,
	})
}

// mainFunc wraps the CLI for testscript execution.
func mainFunc() {
	// Reset flags for each invocation (Cobra reuses the same command)
	debugMode = false
	noColorFlag = true
	executableFlag = ""
	timeoutFlag = ""
	versionRequested = false
	outputFormat = "table"
	stdinFilename = "stdin.py"
	diffFlag = false
	writeFlag = false
	verboseFlag = false
	globalFlag = false

	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitFailure)
	}
}

func setupTestEnv(env *testscript.Env) error {
	// Keep the config loader away from the developer's real home directory
	env.Setenv("HOME", env.WorkDir)

	return nil
}

func TestScriptVersion(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata/scripts/version",
		Setup: setupTestEnv,
	})
}

func TestScriptInit(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata/scripts/init",
		Setup: setupTestEnv,
	})
}

func TestScriptCheck(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata/scripts/check",
		Setup: setupTestEnv,
	})
}

func TestScriptFix(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata/scripts/fix",
		Setup: setupTestEnv,
	})
}

func TestScriptDoctor(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata/scripts/doctor",
		Setup: setupTestEnv,
	})
}
