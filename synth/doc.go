// Package synth holds the pure frequency-synthesis math for the STuW81300:
// PFD and output frequency computation, the DSM-order divider ranges, and
// the solver that turns a divider ratio into N/FRAC/MOD register values.
//
// Nothing in this package touches the bus. Every function is a stateless
// computation over explicit inputs, so the device layer reads the registers
// it needs and delegates the arithmetic here.
//
// All frequency math is carried out in float32. The chip's dividers
// quantize frequencies far more coarsely than binary32 does, and keeping
// the whole chain in single precision makes set-then-get round trips exact
// for frequencies the hardware can actually produce.
package synth
