// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command fwlist builds forward lists from the command line, compares them
// and applies edit scripts to them.
//
//	fwlist show    <list>
//	fwlist compare <list> <list>
//	fwlist edit    <list> <op>...
//
// A list is a separator-joined sequence of integers; the empty string is the
// empty list. Edit ops are applied left to right:
//
//	push:V       insert V at the front
//	pop          remove the first element
//	insert:I=V   insert V after position I (0 is before the first element)
//	erase:I      erase the element after position I
//	set:I=V      replace the element at position I (1 is the first element)
//	reverse      reverse the list
//	clear        remove every element
//
// FWLIST_LOG_LEVEL sets the log level (default warn) and FWLIST_SEPARATOR the
// list separator (default ",").
package main

import (
	"fmt"
	"io"
	"os"

	"code.hybscloud.com/fwlist"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const usage = `usage:
  fwlist show    <list>
  fwlist compare <list> <list>
  fwlist edit    <list> <op>...`

var errUsage = errors.New(usage)

func main() {
	cfg, err := loadConfigFromEnvironment()
	if err != nil {
		panic(fmt.Sprintf("unable to load configuration: %+v", err))
	}
	log := newLogger(cfg)

	if err := run(os.Stdout, log, cfg, os.Args[1:]); err != nil {
		if errors.Cause(err) == errUsage {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		log.WithError(err).Error("fwlist failed")
		os.Exit(1)
	}
}

func run(w io.Writer, log logrus.FieldLogger, cfg *config, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]
	log = log.WithField("cmd", cmd)

	switch cmd {
	case "show":
		if len(args) != 1 {
			return errUsage
		}
		l, err := parseList(args[0], cfg.Separator)
		if err != nil {
			return err
		}
		log.WithField("size", l.GetSize()).Debug("parsed list")
		_, err = fmt.Fprintf(w, "%s size=%d\n", l, l.GetSize())
		return err

	case "compare":
		if len(args) != 2 {
			return errUsage
		}
		a, err := parseList(args[0], cfg.Separator)
		if err != nil {
			return errors.WithMessage(err, "left")
		}
		b, err := parseList(args[1], cfg.Separator)
		if err != nil {
			return errors.WithMessage(err, "right")
		}
		return printComparison(w, a, b)

	case "edit":
		if len(args) < 1 {
			return errUsage
		}
		l, err := parseList(args[0], cfg.Separator)
		if err != nil {
			return err
		}
		for _, op := range args[1:] {
			if err := applyOp(log, l, op); err != nil {
				return err
			}
		}
		_, err = fmt.Fprintf(w, "%s size=%d\n", l, l.GetSize())
		return err

	default:
		return errors.Wrapf(errUsage, "unknown command %q", cmd)
	}
}

func printComparison(w io.Writer, a, b *fwlist.List[int]) error {
	rows := []struct {
		op     string
		result bool
	}{
		{"==", fwlist.Equal(a, b)},
		{"!=", !fwlist.Equal(a, b)},
		{"<", fwlist.Less(a, b)},
		{"<=", fwlist.LessOrEqual(a, b)},
		{">", fwlist.Greater(a, b)},
		{">=", fwlist.GreaterOrEqual(a, b)},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s %-2s %s: %v\n", a, r.op, b, r.result); err != nil {
			return err
		}
	}
	return nil
}
