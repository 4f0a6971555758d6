// Package lint checks BPF C source code against structural pattern
// rules and reports discouraged or deprecated constructs.
//
// At the source code level, individual lints can be disabled with
// comments of the form
//
//	/* bpflint: disable=probe-read */
//	bpf_probe_read(/* ... */);
//
// In this instance, probe-read is the name of the lint to disable.
// Entire blocks can be annotated as well:
//
//	/* bpflint: disable=probe-read */
//	void handler(void) {
//	    void *dst = /* ... */
//	    bpf_probe_read(dst, /* ... */);
//	}
//
// In both examples, none of the instances of bpf_probe_read will be
// flagged. The directive "bpflint: disable=all" acts as a catch-all,
// disabling reporting of all lints.
package lint
