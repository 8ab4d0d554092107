// Package annotate produces per-utterance annotation records for
// speech-synthesis training: audio duration, speech duration after silence
// trimming, pitch statistics, syllable stream, and speaking rate. All
// collaborators are injected through the interfaces in this package, so the
// pipeline carries no hidden global state and tests can substitute fakes.
package annotate
