package state

import (
	"context"
	"io"
	stdlog "log"
	"os"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextWithEnv_Defaults(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))

	if env.Log == nil {
		t.Fatal("environment must start with a logger")
	}
	// nothing is configured yet, early messages are discarded
	if env.Log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("default logger must be Nop")
	}
	env.Log.Warn("must not panic before configuration is loaded")

	if env.Cfg != nil || env.Rpt != nil {
		t.Error("configuration and report are loaded later")
	}
	if env.Overwrite || env.Charset != nil {
		t.Errorf("compile options must be unset, got overwrite=%v charset=%v", env.Overwrite, env.Charset)
	}
	if env.Uptime() < 0 {
		t.Errorf("Uptime() = %v", env.Uptime())
	}
}

func TestContextWithEnv_Separate(t *testing.T) {
	a := EnvFromContext(ContextWithEnv(context.Background()))
	b := EnvFromContext(ContextWithEnv(context.Background()))
	if a == b {
		t.Error("every context must get its own environment")
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for context without environment")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_StdLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	env := &LocalEnv{Log: zap.New(core)}

	env.RedirectStdLog()
	stdlog.Print("written by a library")
	env.RestoreStdLog()
	stdlog.SetOutput(io.Discard)
	t.Cleanup(func() { stdlog.SetOutput(os.Stderr) })
	stdlog.Print("after restore")

	if n := logs.FilterMessage("written by a library").Len(); n != 1 {
		t.Errorf("redirected messages = %d, want 1", n)
	}
	if n := logs.FilterMessage("after restore").Len(); n != 0 {
		t.Errorf("messages after restore = %d, want 0", n)
	}
}

func TestLocalEnv_StdLogWithoutLogger(t *testing.T) {
	env := &LocalEnv{}
	env.RedirectStdLog()
	if env.restoreStdLog != nil {
		t.Error("nothing to redirect to without logger")
	}
	env.RestoreStdLog()
}
