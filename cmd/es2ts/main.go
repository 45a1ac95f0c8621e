// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

// es2ts converts an elementary video stream (H.262, H.264/AVC or AVS) to an
// H.222 transport stream, wrapping each ES unit in a PES packet and
// fragmenting it across 188-byte TS packets behind a PAT/PMT pair.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/1008610010/mts-utils/pkg/base"
	"github.com/1008610010/mts-utils/pkg/esstream"
	"github.com/1008610010/mts-utils/pkg/pipeline"
	"github.com/1008610010/mts-utils/pkg/sink"
	"github.com/1008610010/mts-utils/pkg/vidtype"
	"github.com/q191201771/naza/pkg/nazalog"
)

const defaultTcpPort = 88

func main() {
	os.Exit(run())
}

func run() int {
	var (
		videoPid   uint
		pmtPid     uint
		forceH264  bool
		forceH262  bool
		forceAvs   bool
		useStdin   bool
		useStdout  bool
		host       string
		errTarget  string
		verbose    bool
		quiet      bool
		maxUnits   int
		maxUnits2  int
	)

	flag.UintVar(&videoPid, "pid", 0x68, "video PID to use for the data (decimal or 0x-prefixed hex)")
	flag.UintVar(&pmtPid, "pmt", 0x66, "PMT PID to use (decimal or 0x-prefixed hex)")
	flag.BoolVar(&forceH264, "h264", false, "force the input to be treated as MPEG-4/AVC")
	flag.BoolVar(&forceH264, "avc", false, "alias for -h264")
	flag.BoolVar(&forceH262, "h262", false, "force the input to be treated as MPEG-2")
	flag.BoolVar(&forceAvs, "avs", false, "force the input to be treated as AVS")
	flag.BoolVar(&useStdin, "stdin", false, "take input from stdin instead of a named file")
	flag.BoolVar(&useStdout, "stdout", false, "write output to stdout instead of a named file; forces -quiet and -err stderr")
	flag.StringVar(&host, "host", "", "write output over TCP/IP to host[:port] (default port 88) instead of to a named file")
	flag.StringVar(&errTarget, "err", "stdout", "where to write this program's own status/error messages: stdout (default) or stderr")
	flag.BoolVar(&verbose, "verbose", false, "log a line per ES unit as it is read")
	flag.BoolVar(&verbose, "v", false, "alias for -verbose")
	flag.BoolVar(&quiet, "quiet", false, "only emit error messages")
	flag.BoolVar(&quiet, "q", false, "alias for -quiet")
	flag.IntVar(&maxUnits, "max", 0, "maximum number of ES data units to read (0 means unlimited)")
	flag.IntVar(&maxUnits2, "m", 0, "alias for -max")
	flag.Usage = printUsage

	flag.Parse()
	if maxUnits == 0 {
		maxUnits = maxUnits2
	}

	if useStdout {
		quiet = true
		errTarget = "stderr"
	}
	errOut := os.Stdout
	if errTarget == "stderr" {
		errOut = os.Stderr
	} else if errTarget != "stdout" {
		fmt.Fprintf(os.Stderr, "### es2ts: unrecognised option %q to -err (not 'stdout' or 'stderr')\n", errTarget)
		return 1
	}

	forced := vidtype.Unknown
	switch {
	case forceH264:
		forced = vidtype.H264
	case forceH262:
		forced = vidtype.H262
	case forceAvs:
		forced = vidtype.AVS
	}

	args := flag.Args()
	var inName, outName string
	useTcp := host != ""
	if useStdin {
		if len(args) > 0 {
			outName = args[0]
		}
		if outName == "" && !useStdout && !useTcp {
			fmt.Fprintln(os.Stderr, "### es2ts: no output file specified")
			return 1
		}
	} else {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "### es2ts: no input file specified")
			return 1
		}
		inName = args[0]
		args = args[1:]
		if !useStdout && !useTcp {
			if len(args) == 0 {
				fmt.Fprintln(os.Stderr, "### es2ts: no output file specified")
				return 1
			}
			outName = args[0]
		}
	}

	var src *esstream.ByteSource
	seekable := false
	if useStdin {
		src = esstream.NewByteSource(os.Stdin)
	} else {
		fp, err := os.Open(inName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "### es2ts: problem opening input file: %v\n", err)
			return 1
		}
		defer fp.Close()
		src = esstream.NewByteSource(fp)
		seekable = true
	}

	var snk sink.Sink
	switch {
	case useStdout:
		snk = sink.NewStdoutSink()
	case useTcp:
		addr, err := resolveHostArg(host)
		if err != nil {
			fmt.Fprintf(errOut, "### es2ts: %v\n", err)
			return 1
		}
		snk, err = sink.NewTcpSink(addr)
		if err != nil {
			fmt.Fprintf(errOut, "### es2ts: problem connecting to %s: %v\n", addr, err)
			return 1
		}
	default:
		fs, err := sink.NewFileSink(outName)
		if err != nil {
			fmt.Fprintf(errOut, "### es2ts: problem opening output file: %v\n", err)
			return 1
		}
		snk = fs
	}
	defer snk.Close()

	if !quiet {
		if useStdin {
			fmt.Fprintln(errOut, "Reading from <stdin>")
		} else {
			fmt.Fprintf(errOut, "Reading from %s\n", inName)
		}
	}

	_ = nazalog.Init(func(option *nazalog.Option) {
		option.AssertBehavior = nazalog.AssertFatal
	})
	defer nazalog.Sync()
	logger := base.DefaultLogger()

	cfg := pipeline.Config{
		VideoPid:   uint16(videoPid),
		PmtPid:     uint16(pmtPid),
		ForcedType: forced,
		MaxUnits:   maxUnits,
		Verbose:    verbose,
	}

	p, err := pipeline.New(cfg, logger)
	if err != nil {
		fmt.Fprintf(errOut, "### es2ts: invalid configuration: %v\n", err)
		return 1
	}

	n, err := p.Run(src, seekable, snk)
	if err != nil && err != base.ErrBudgetReached {
		fmt.Fprintf(errOut, "### es2ts: error converting ES data: %v\n", err)
		return 1
	}

	if !quiet {
		plural := "s"
		if n == 1 {
			plural = ""
		}
		fmt.Fprintf(errOut, "Transferred %d ES data unit%s\n", n, plural)
	}
	return 0
}

// resolveHostArg normalises a -host argument of the form "host" or
// "host:port" into a dial-ready "host:port" string, defaulting to port 88
// when none is given.
func resolveHostArg(host string) (string, error) {
	if h, p, err := net.SplitHostPort(host); err == nil {
		return net.JoinHostPort(h, p), nil
	}
	return net.JoinHostPort(host, strconv.Itoa(defaultTcpPort)), nil
}

func printUsage() {
	fmt.Fprint(os.Stderr, `Usage: es2ts [switches] [<infile>] [<outfile>]

  Convert an elementary video stream to H.222 transport stream.
  Supports input streams conforming to MPEG-2 (H.262), MPEG-4/AVC (H.264)
  and AVS.

  This program packages the elementary stream data directly - it does not
  parse it as H.262, H.264 or AVS syntax beyond the leading startcodes
  needed to classify the stream.

Files:
  <infile>          a file containing the Elementary Stream data
                    (but see -stdin below)
  <outfile>         an H.222 Transport Stream file
                    (but see -stdout and -host below)

Switches:
  -pid <pid>        video PID to use for the data. Defaults to 0x68.
  -pmt <pid>        PMT PID to use. Defaults to 0x66.
  -verbose, -v      output summary information about each ES unit as it
                    is read
  -quiet, -q        only output error messages
  -err stdout       write this program's own messages to stdout (default)
  -err stderr       write this program's own messages to stderr
  -stdin            take input from <stdin>, instead of a named file
  -stdout           write output to <stdout>, instead of a named file.
                    Forces -quiet and -err stderr.
  -host <host>, -host <host>:<port>
                    write output over TCP/IP to the named host, instead
                    of to a named file. Defaults to port 88.
  -max <n>, -m <n>  maximum number of ES data units to read

Stream type:
  If input is from a seekable file, the program inspects the start of the
  stream to decide whether it is H.264, H.262 or AVS. If input is from
  stdin, this isn't possible, so H.262 is assumed unless overridden.

  -h264, -avc       force the program to treat the input as MPEG-4/AVC
  -h262             force the program to treat the input as MPEG-2
  -avs              force the program to treat the input as AVS
`)
}
