package crystio

import (
	"os"
	"runtime"
	"sync"
)

// Capabilities describes what the current process can use for dispatch.
type Capabilities struct {
	// Parallel is true when more than one CPU is usable.
	Parallel bool
	// Messaging is true when the process was started by an MPI launcher.
	Messaging bool
}

// messagingEnv are variables set by common MPI launchers.
var messagingEnv = []string{"OMPI_COMM_WORLD_SIZE", "PMI_SIZE", "MPI_LOCALNRANKS"}

// DetectCapabilities inspects the process once and caches the result.
var DetectCapabilities = sync.OnceValue(func() Capabilities {
	return detectCapabilities(runtime.GOMAXPROCS(0), os.LookupEnv)
})

func detectCapabilities(procs int, lookup func(string) (string, bool)) Capabilities {
	c := Capabilities{Parallel: procs > 1}
	for _, key := range messagingEnv {
		if _, ok := lookup(key); ok {
			c.Messaging = true
			break
		}
	}
	return c
}
