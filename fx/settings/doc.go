// Package settings models the per-effect parameters of a render.
//
// EffectSettings is a plain value: every method returns a modified copy,
// so a caller can hand one to a render and keep editing another. Values
// can be set field by field or derived from a single 0..100 intensity
// (WithIntensity); the two entry points are independent and neither is
// applied implicitly.
//
// Validate rejects any field outside its documented range. Settings can be
// persisted as a versioned JSON document with Load and Save.
package settings
