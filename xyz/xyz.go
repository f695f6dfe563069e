/*
 * xyz.go, part of automol.
 *
 * Copyright 2021 The Auto-Mech developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*Package xyz writes and reads batches of cartesian geometries in the plain
XYZ text format, optionally compressed. Compression is selected from the
file name: ".zst" appends a zstd layer and ".gz" a gzip one, anything else
is written uncompressed. Bootstrap geometries are cheap to make in bulk,
which is the whole point of compressing them.*/
package xyz

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"

	"github.com/Auto-Mech/automol"
)

//Write!

//XYZW writes a (possibly compressed) multi-geometry XYZ file.
type XYZW struct {
	f         *os.File
	h         io.WriteCloser
	filename  string
	writeable bool
	frames    int
}

//NewWriter opens name for writing XYZ geometries, stacking a compression
//layer on top of the file when the name asks for one.
func NewWriter(name string) (*XYZW, error) {
	X := new(XYZW)
	var err error
	X.f, err = os.Create(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	switch {
	case strings.HasSuffix(name, ".zst"):
		X.h, err = zstd.NewWriter(X.f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			X.f.Close()
			return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
		}
	case strings.HasSuffix(name, ".gz"):
		X.h = gzip.NewWriter(X.f)
	default:
		X.h = X.f
	}
	X.filename = name
	X.writeable = true
	return X, nil
}

//WNext appends one geometry to the file: the symbols name the atoms, in the
//same order as the rows of the Nx3 coordinate matrix, and the comment goes
//to the second line of the frame.
func (X *XYZW) WNext(symbols []string, geo *mat.Dense, comment string) error {
	if X == nil {
		return Error{WriterUnInitialized, "", []string{"WNext"}, true}
	}
	if !X.writeable {
		return Error{WriterUnInitialized, X.filename, []string{"WNext"}, true}
	}
	if geo == nil {
		return Error{NilCoordinates, X.filename, []string{"WNext"}, true}
	}
	r, c := geo.Dims()
	if c != 3 || r != len(symbols) {
		return Error{fmt.Sprintf("Mismatched geometry: %d symbols, %dx%d coordinates", len(symbols), r, c), X.filename, []string{"WNext"}, true}
	}
	comment = strings.ReplaceAll(comment, "\n", " ")
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n%s\n", r, comment)
	for i := 0; i < r; i++ {
		fmt.Fprintf(&b, "%-2s %12.6f %12.6f %12.6f\n", symbols[i], geo.At(i, 0), geo.At(i, 1), geo.At(i, 2))
	}
	if _, err := X.h.Write([]byte(b.String())); err != nil {
		return Error{err.Error(), X.filename, []string{"WNext"}, true}
	}
	X.frames++
	return nil
}

//Frames returns the number of geometries written so far.
func (X *XYZW) Frames() int {
	return X.frames
}

//Close flushes and closes the file. It is safe to call on nil.
func (X *XYZW) Close() {
	if X == nil || !X.writeable {
		return
	}
	if X.h != X.f {
		X.h.Close()
	}
	X.f.Close()
	X.writeable = false
}

//Read!

//zstd.Decoder has a Close method without an error return, so it does not
//implement io.ReadCloser by itself.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//XYZR reads a (possibly compressed) multi-geometry XYZ file.
type XYZR struct {
	f        *os.File
	h        io.ReadCloser
	br       *bufio.Reader
	filename string
	readable bool
}

//New opens name for reading XYZ geometries, undoing the compression layer
//the name asks for.
func New(name string) (*XYZR, error) {
	X := new(XYZR)
	var err error
	X.f, err = os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"New"}, true}
	}
	switch {
	case strings.HasSuffix(name, ".zst"):
		d, err := zstd.NewReader(X.f)
		if err != nil {
			X.f.Close()
			return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"New"}, true}
		}
		X.h = zstdReadCloser{d}
	case strings.HasSuffix(name, ".gz"):
		X.h, err = gzip.NewReader(X.f)
		if err != nil {
			X.f.Close()
			return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"New"}, true}
		}
	default:
		X.h = X.f
	}
	X.br = bufio.NewReader(X.h)
	X.filename = name
	X.readable = true
	return X, nil
}

//Readable tells whether the reader is ready to produce frames.
func (X *XYZR) Readable() bool {
	return X != nil && X.readable
}

//Next reads the next geometry in the file and returns its atom symbols,
//its Nx3 coordinates and the frame comment. At the end of the file it
//returns an error implementing LastFrameError, which signals normal
//termination rather than a real problem.
func (X *XYZR) Next() ([]string, *mat.Dense, string, error) {
	if X == nil {
		return nil, nil, "", Error{ReaderUnInitialized, "", []string{"Next"}, true}
	}
	if !X.readable {
		return nil, nil, "", Error{ReaderUnInitialized, X.filename, []string{"Next"}, true}
	}
	line, err := X.br.ReadString('\n')
	if err == io.EOF && strings.TrimSpace(line) == "" {
		return nil, nil, "", lastFrameError{fileName: X.filename}
	}
	if err != nil && err != io.EOF {
		return nil, nil, "", Error{err.Error(), X.filename, []string{"Next"}, true}
	}
	nat, err2 := strconv.Atoi(strings.TrimSpace(line))
	if err2 != nil || nat < 0 {
		return nil, nil, "", Error{WrongFormat + ": bad atom count " + strings.TrimSpace(line), X.filename, []string{"Next"}, true}
	}
	comment, err := X.br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, nil, "", Error{err.Error(), X.filename, []string{"Next"}, true}
	}
	comment = strings.TrimSuffix(comment, "\n")
	symbols := make([]string, 0, nat)
	geo := mat.NewDense(nat, 3, nil)
	for i := 0; i < nat; i++ {
		line, err = X.br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, nil, "", Error{err.Error(), X.filename, []string{"Next"}, true}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, nil, "", Error{WrongFormat + ": truncated frame", X.filename, []string{"Next"}, true}
		}
		symbols = append(symbols, fields[0])
		for j := 0; j < 3; j++ {
			v, errf := strconv.ParseFloat(fields[j+1], 64)
			if errf != nil {
				return nil, nil, "", Error{WrongFormat + ": " + errf.Error(), X.filename, []string{"Next"}, true}
			}
			geo.Set(i, j, v)
		}
	}
	return symbols, geo, comment, nil
}

//Close closes the file. It is safe to call on nil.
func (X *XYZR) Close() {
	if X == nil || !X.readable {
		return
	}
	if X.h != X.f {
		X.h.Close()
	}
	X.f.Close()
	X.readable = false
}

//Errors

//Error is the general error type for XYZ files. It fulfills automol.Error.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("xyz file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file associated to the error.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

const (
	ReaderUnInitialized = "XYZ object uninitialized to read"
	WriterUnInitialized = "XYZ object uninitialized to write"
	UnableToOpen        = "Unable to open file"
	NilCoordinates      = "Given nil coordinates"
	WrongFormat         = "Wrong format in the XYZ file or frame"
)

//LastFrameError is the interface of the harmless error that marks the end
//of a file, so it can be filtered in a type switch.
type LastFrameError interface {
	automol.Error
	FileName() string
	NormalLastFrameTermination() //does nothing, just to separate this interface from other errors
}

//lastFrameError implements LastFrameError.
type lastFrameError struct {
	deco     []string
	fileName string
}

//NormalLastFrameTermination does nothing.
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}
