// Package emitter renders configuration objects into files and writes them
// to a target directory. Existing files are only replaced when overwriting
// is requested. Output is deterministic: JSON keys are sorted and every file
// ends with a newline.
package emitter
