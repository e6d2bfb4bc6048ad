// Package profiling wires the optional developer profiling flags.
package profiling

import (
	"log"
	"os"
	"runtime"
	"runtime/pprof"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile
var pprofStopCPUProfile = pprof.StopCPUProfile
var pprofWriteHeapProfile = pprof.WriteHeapProfile

// DoCPUProfiling starts CPU profiling into the named file and returns a
// stop function. On failure a no-op stop function is returned.
func DoCPUProfiling(fileName string) func() {
	f, err := osCreate(fileName)
	if err != nil {
		log.Printf("could not create CPU profile: %v", err)
		return func() {}
	}
	if err := pprofStartCPUProfile(f); err != nil {
		log.Printf("could not start CPU profile: %v", err)
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		_ = f.Close()
	}
}

// DoMemProfiling returns a function that writes a heap profile to the
// named file, to be deferred until shutdown.
func DoMemProfiling(fileName string) func() {
	return func() {
		f, err := osCreate(fileName)
		if err != nil {
			log.Printf("could not create memory profile: %v", err)
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err := pprofWriteHeapProfile(f); err != nil {
			log.Printf("could not write memory profile: %v", err)
		}
	}
}
