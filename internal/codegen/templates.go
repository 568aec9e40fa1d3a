package codegen

const goTemplate = `// Code generated by noisegen from {{.Source}}. DO NOT EDIT.

package main

/*
#include "seed_abi.h"
*/
import "C"

import "github.com/danmuck/libnoise/internal/noise"
{{range .Exports}}{{if .GroupStart}}
// {{.GroupStart}}
{{end}}
// {{.Symbol}} evaluates {{.Dims}}-D {{.Describe}} at ({{.Coords}}).
//
// seed must be a live handle from noise_seed_new. Passing a deleted or
// foreign handle is undefined behaviour.
//
//export {{.Symbol}}
func {{.Symbol}}(seed *C.Seed, {{.Coords}} C.double) C.double {
	return C.double(noise.{{.Ident}}.{{.Method}}(borrow(seed), {{.Args}}))
}
{{end}}`

const headerTemplate = `/* Code generated by noisegen from {{.Source}}. DO NOT EDIT. */

#ifndef LIBNOISE_NOISE_H
#define LIBNOISE_NOISE_H

#include <stdint.h>

#ifdef __cplusplus
extern "C" {
#endif

typedef struct Seed Seed;

/*
 * Returns a new seed owned by the caller. Never returns NULL; the process
 * aborts if memory is exhausted. Free it with noise_seed_delete.
 */
Seed *noise_seed_new(uint32_t seed);

/*
 * Frees seed. seed must come from noise_seed_new, must not have been freed
 * already, and no call using it may still be running. Anything else is
 * undefined behaviour.
 */
void noise_seed_delete(Seed *seed);

/*
 * Every function below borrows seed for one call and returns a sample that
 * depends only on the seed value and the coordinates. seed must be live.
 */
{{range .Exports}}{{if .GroupStart}}
/* {{.GroupStart}} */
{{end}}double {{.Symbol}}(Seed *seed, {{.HeaderParams}});
{{end}}
#ifdef __cplusplus
}
#endif

#endif
`
