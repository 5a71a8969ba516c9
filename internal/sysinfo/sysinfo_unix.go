//go:build !windows

package sysinfo

import "golang.org/x/sys/unix"

func Kernel() (Info, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return Info{}, err
	}
	return Info{
		Name:    nulTerminated(uts.Sysname[:]),
		Release: nulTerminated(uts.Release[:]),
		Machine: nulTerminated(uts.Machine[:]),
	}, nil
}

func nulTerminated(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
