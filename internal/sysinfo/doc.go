// Package sysinfo collects a best-effort snapshot of the host the
// container runs on: OS identity, kernel, CPU count and memory usage.
//
// Collection never fails hard. Inside minimal container images some
// sources (for example /etc/os-release) may be missing, so unavailable
// fields are simply left at their zero value.
package sysinfo
