package exec

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// recorder is an Executor that records what it was asked to run.
type recorder struct {
	args    []string
	env     map[string]string
	dir     string
	ctx     context.Context
	timeout time.Duration
	inherit bool
	result  *Result
}

func (r *recorder) WithEnv(env map[string]string) Executor {
	r.env = env
	return r
}

func (r *recorder) WithDir(dir string) Executor {
	r.dir = dir
	return r
}

func (r *recorder) WithContext(ctx context.Context) Executor {
	r.ctx = ctx
	return r
}

func (r *recorder) WithTimeout(d time.Duration) Executor {
	r.timeout = d
	return r
}

func (r *recorder) WithInheritEnv() Executor {
	r.inherit = true
	return r
}

func (r *recorder) Clone() Executor {
	c := *r
	return &c
}

func (r *recorder) Run(args ...string) (*Result, error) {
	r.args = args
	return r.result, nil
}

type ctxKey struct{}

func TestWrapperPrependsCommand(t *testing.T) {
	rec := &recorder{result: &Result{Stdout: "14\n"}}
	getprop := NewWrapper(rec, "getprop")

	result, err := getprop.Run("ro.build.version.release")
	require.NoError(t, err)
	require.Equal(t, "14\n", result.Stdout)
	require.Equal(t, []string{"getprop", "ro.build.version.release"}, rec.args)
}

func TestWrapperForwardsSettings(t *testing.T) {
	rec := &recorder{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "v")

	_, err := NewWrapper(rec, "uname").
		WithEnv(map[string]string{"LANG": "C"}).
		WithDir("/tmp").
		WithContext(ctx).
		WithTimeout(2 * time.Second).
		WithInheritEnv().
		Run("-m")
	require.NoError(t, err)

	require.Equal(t, []string{"uname", "-m"}, rec.args)
	require.Equal(t, map[string]string{"LANG": "C"}, rec.env)
	require.Equal(t, "/tmp", rec.dir)
	require.Equal(t, ctx, rec.ctx)
	require.Equal(t, 2*time.Second, rec.timeout)
	require.True(t, rec.inherit)
}

func TestWrapperClone(t *testing.T) {
	rec := &recorder{}
	clone := NewWrapper(rec, "uname").Clone()

	_, err := clone.Run("-r")
	require.NoError(t, err)
	require.Nil(t, rec.args)
}

func TestWrapperRealCommand(t *testing.T) {
	requireShell(t)

	result, err := NewWrapper(New(), "echo").Run("hello", "world")
	require.NoError(t, err)
	require.Equal(t, "hello world\n", result.Stdout)
}
