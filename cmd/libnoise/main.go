// Command libnoise is the C shared library exposing seeded noise
// evaluation.
//
//	go build -buildmode=c-shared -o libnoise.so ./cmd/libnoise
//	go build -buildmode=c-shared -tags noisedebug -o libnoise-debug.so ./cmd/libnoise
//
// noise.h is the stable public header. A seed from noise_seed_new is owned
// by the caller until it is passed to noise_seed_delete; every noise_*
// evaluation borrows it for one call. Concurrent evaluations on one seed
// are safe. Deleting it while an evaluation runs, deleting it twice, or
// passing any other pointer is undefined behaviour. The noisedebug build
// turns those into a logged abort.
package main

//go:generate go run ../noisegen -go exports_gen.go -header noise.h

func main() {}
