package ui

import (
	"os"
	"testing"

	"github.com/zhubert/tally/internal/logger"
)

func TestMain(m *testing.M) {
	// Keep test runs out of /tmp/tally-debug.log
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}
