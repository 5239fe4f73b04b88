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

// Package logging is a thin helper around "github.com/op/go-logging" so
// each package in the module can get a preconfigured, named logger in
// one line instead of repeating backend/formatter setup.
package logging

import (
	"os"

	"github.com/op/go-logging"

	"github.com/kestrelgames/chesscore/config"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfunc:-16.16s} %{level:-7.7s}:  %{message}`,
)

var loggers = map[string]*logging.Logger{}

// Get returns a Logger for the given package name, preconfigured with
// an os.Stderr backend at the level set in config.Settings.Log.Level.
// The same *Logger instance is returned for repeated calls with the
// same name. Its level is read once, at the first call for that name;
// a later change to config.Settings (for example by config.Load) does
// not affect loggers that already exist.
func Get(name string) *logging.Logger {
	if l, ok := loggers[name]; ok {
		return l
	}
	l := logging.MustGetLogger(name)
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.Settings.Log.Level), "")
	l.SetBackend(leveled)
	loggers[name] = l
	return l
}
