// Package device describes the platform a crash happened on.
package device

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/midian/base/exec"
	"golang.org/x/sync/errgroup"
)

// Unknown is reported for any value that could not be probed.
const Unknown = "unknown"

// Timeout bounds each probe command.
const Timeout = 2 * time.Second

// Info identifies the operating system release and device model.
type Info struct {
	OS      string
	Release string
	Model   string
}

// String renders the crash report header form, for example "Android: 14(Pixel 7)".
func (i Info) String() string {
	return fmt.Sprintf("%s: %s(%s)", i.OS, i.Release, i.Model)
}

// probe names the tool that reports the release and the model, and the
// argument that selects each.
type probe struct {
	tool    string
	release string
	model   string
}

var probes = map[string]probe{
	"android": {tool: "getprop", release: "ro.build.version.release", model: "ro.product.model"},
}

var unameProbe = probe{tool: "uname", release: "-r", model: "-m"}

var osNames = map[string]string{
	"android": "Android",
	"darwin":  "Darwin",
	"freebsd": "FreeBSD",
	"ios":     "iOS",
	"linux":   "Linux",
	"netbsd":  "NetBSD",
	"openbsd": "OpenBSD",
	"windows": "Windows",
}

// Probe reports the running platform, using runner for the probe commands.
// The release and model probes run concurrently, each on its own clone of
// runner. Values that cannot be determined are Unknown; Probe never fails.
func Probe(ctx context.Context, runner exec.Executor) Info {
	return probeOS(ctx, runner, runtime.GOOS)
}

func probeOS(ctx context.Context, runner exec.Executor, goos string) Info {
	p, ok := probes[goos]
	if !ok {
		p = unameProbe
	}
	info := Info{OS: osName(goos), Release: Unknown, Model: Unknown}
	if runner == nil {
		return info
	}

	var g errgroup.Group
	g.Go(func() error {
		info.Release = run(ctx, exec.NewWrapper(runner.Clone(), p.tool), p.release)
		return nil
	})
	g.Go(func() error {
		info.Model = run(ctx, exec.NewWrapper(runner.Clone(), p.tool), p.model)
		return nil
	})
	_ = g.Wait()
	return info
}

func osName(goos string) string {
	if name, ok := osNames[goos]; ok {
		return name
	}
	return goos
}

// run returns the first line of the tool's stdout, or Unknown.
func run(ctx context.Context, tool exec.Executor, arg string) string {
	result, err := tool.WithContext(ctx).WithTimeout(Timeout).Run(arg)
	if err != nil || result == nil {
		return Unknown
	}
	line, _, _ := strings.Cut(strings.TrimSpace(result.Stdout), "\n")
	if line = strings.TrimSpace(line); line == "" {
		return Unknown
	}
	return line
}
