// Package audio provides the acoustic collaborators of the annotation
// pipeline: WAV loading, silence trimming, and pitch estimation.
package audio
