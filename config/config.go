/*
 * MIT License
 *
 * Copyright (c) 2024 chesscore contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config holds the module's tunable settings: log level, the
// three search strength profiles, and the evaluator's heuristic
// weights. Settings load from an optional TOML file and otherwise fall
// back to the defaults below, so the core runs with zero configuration
// while still being tunable by an embedding application.
package config

import (
	"github.com/BurntSushi/toml"
)

// Settings is the process-wide configuration. It is safe to read
// concurrently once Load (or the package defaults) has run; nothing in
// this module mutates it after startup.
var Settings = defaultConfig()

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

type logConfiguration struct {
	Level int // op/go-logging level: 0=CRITICAL .. 5=DEBUG
}

func defaultConfig() conf {
	return conf{
		Log:    defaultLogConfiguration(),
		Search: defaultSearchConfiguration(),
		Eval:   defaultEvalConfiguration(),
	}
}

// Load reads a TOML file at path into Settings, leaving any field not
// present in the file at its current (default) value. It is a no-op
// error-wise if the caller doesn't need custom configuration; most
// embedders never call it.
func Load(path string) error {
	_, err := toml.DecodeFile(path, &Settings)
	return err
}

func defaultLogConfiguration() logConfiguration {
	return logConfiguration{Level: 2} // WARNING
}
