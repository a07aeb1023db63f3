// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 decoding via github.com/hajimehoshi/go-mp3.
//
// The decoder wraps an MP3 stream as an audio.Source delivering float32
// samples in [-1.0, 1.0]:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//
// go-mp3 always decodes to stereo at the file's native rate; channel
// reduction and resampling happen downstream in the audio package.
// Decoding only — MP3 writing is not supported.
package mp3
