package sysinfo

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/windows"
)

func Kernel() (Info, error) {
	major, minor, build := windows.RtlGetNtVersionNumbers()
	return Info{
		Name:    "Windows",
		Release: fmt.Sprintf("%d.%d.%d", major, minor, build),
		Machine: runtime.GOARCH,
	}, nil
}
