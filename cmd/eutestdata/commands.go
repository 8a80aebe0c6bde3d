package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"eutestdata/internal/fixtures"
	"eutestdata/internal/iban"
	"eutestdata/internal/personalid"
	"eutestdata/internal/personalid/date"
	"eutestdata/internal/platform/config"
	"eutestdata/internal/platform/logger"
	dErrors "eutestdata/pkg/domain-errors"
)

// CLI is the command tree.
type CLI struct {
	Verbose bool `name:"verbose" short:"v" help:"Log debug output to stderr"`

	IBAN IBANCmd `cmd:"" name:"iban" help:"Generate, validate and format IBANs"`
	ID   IDCmd   `cmd:"" name:"id" help:"Generate and parse personal identification codes"`
}

// Globals carries the writers and the service shared by every command.
type Globals struct {
	Out io.Writer
	Err io.Writer

	service *fixtures.Service
}

func (g *Globals) init(level slog.Level) {
	log := logger.New(g.Err, "text", level)
	g.service = fixtures.New(personalid.NewRegistry(), config.MaxBatchCeiling, log, nil)
}

type IBANCmd struct {
	Countries IBANCountriesCmd `cmd:"" help:"List supported IBAN countries"`
	Generate  IBANGenerateCmd  `cmd:"" help:"Generate random valid IBANs"`
	Validate  IBANValidateCmd  `cmd:"" help:"Validate IBANs; exits non-zero if any is invalid"`
	Format    IBANFormatCmd    `cmd:"" help:"Group IBANs in blocks of four"`
}

type IDCmd struct {
	Countries IDCountriesCmd `cmd:"" help:"List supported personal ID countries"`
	Generate  IDGenerateCmd  `cmd:"" help:"Generate personal ID codes"`
	Parse     IDParseCmd     `cmd:"" help:"Decode personal ID codes"`
}

type IBANCountriesCmd struct{}

func (c *IBANCountriesCmd) Run(g *Globals) error {
	tw := tabwriter.NewWriter(g.Out, 0, 4, 2, ' ', 0)
	for _, country := range g.service.IBANCountries(context.Background()) {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", country.Code, country.Name, country.Length)
	}
	return tw.Flush()
}

type IBANGenerateCmd struct {
	Country string  `name:"country" short:"c" default:"random" help:"ISO country code, or 'random' for a different country per row"`
	Count   int     `name:"count" short:"n" default:"1" help:"Number of IBANs"`
	Spaces  bool    `name:"spaces" short:"s" help:"Group output in blocks of four"`
	Seed    *uint64 `name:"seed" help:"Seed for a reproducible batch"`
	Details bool    `name:"details" short:"d" help:"Print country and validity next to each code"`
}

func (c *IBANGenerateCmd) Run(g *Globals) error {
	batch, err := g.service.GenerateIBANs(context.Background(), fixtures.IBANRequest{
		Country: c.Country,
		Count:   c.Count,
		Spaces:  c.Spaces,
		Seed:    c.Seed,
	})
	if err != nil {
		return cliError(err)
	}
	if !c.Details {
		for _, row := range batch.Rows {
			fmt.Fprintln(g.Out, row.Code)
		}
		return nil
	}
	tw := tabwriter.NewWriter(g.Out, 0, 4, 2, ' ', 0)
	for _, row := range batch.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Code, row.Country, validity(row.Valid))
	}
	return tw.Flush()
}

type IBANValidateCmd struct {
	IBANs []string `arg:"" name:"iban" help:"IBANs to check; quote codes that contain spaces"`
}

func (c *IBANValidateCmd) Run(g *Globals) error {
	invalid := 0
	for _, in := range c.IBANs {
		check := g.service.ValidateIBAN(context.Background(), in)
		fmt.Fprintf(g.Out, "%s\t%s\n", check.Formatted, validity(check.Valid))
		if !check.Valid {
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d IBANs are invalid", invalid, len(c.IBANs))
	}
	return nil
}

type IBANFormatCmd struct {
	IBANs []string `arg:"" name:"iban" help:"IBANs to group"`
}

func (c *IBANFormatCmd) Run(g *Globals) error {
	for _, in := range c.IBANs {
		fmt.Fprintln(g.Out, iban.Format(iban.Normalize(in)))
	}
	return nil
}

type IDCountriesCmd struct{}

func (c *IDCountriesCmd) Run(g *Globals) error {
	tw := tabwriter.NewWriter(g.Out, 0, 4, 2, ' ', 0)
	for _, country := range g.service.IDCountries(context.Background()) {
		fmt.Fprintf(tw, "%s\t%s\n", country.Code, country.Name)
	}
	return tw.Flush()
}

type IDGenerateCmd struct {
	Country string  `name:"country" short:"c" default:"EE" help:"ISO country code"`
	Count   int     `name:"count" short:"n" default:"1" help:"Number of draws"`
	Gender  string  `name:"gender" short:"g" default:"any" enum:"any,male,female,m,f" help:"Gender constraint (any, male, female)"`
	Year    int     `name:"year" short:"y" help:"Birth year constraint; 0 for any"`
	Seed    *uint64 `name:"seed" help:"Seed for a reproducible batch"`
	Details bool    `name:"details" short:"d" help:"Print gender, birth date and validity next to each code"`
}

func (c *IDGenerateCmd) Run(g *Globals) error {
	gender, err := date.ParseGender(c.Gender)
	if err != nil {
		return err
	}
	batch, err := g.service.GenerateIDs(context.Background(), fixtures.IDRequest{
		Country: c.Country,
		Count:   c.Count,
		Gender:  gender,
		Year:    c.Year,
		Seed:    c.Seed,
	})
	if err != nil {
		return cliError(err)
	}

	if !c.Details {
		for _, row := range batch.Rows {
			fmt.Fprintln(g.Out, row.Code)
		}
	} else {
		tw := tabwriter.NewWriter(g.Out, 0, 4, 2, ' ', 0)
		for _, row := range batch.Rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Code, orDash(row.Gender), orDash(row.DOB), validity(row.Valid))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	if batch.Skipped > 0 {
		fmt.Fprintf(g.Err, "%d of %d draws could not satisfy the constraints\n", batch.Skipped, c.Count)
	}
	return nil
}

type IDParseCmd struct {
	Country string   `name:"country" short:"c" required:"" help:"ISO country code"`
	Codes   []string `arg:"" name:"code" help:"Codes to decode"`
}

func (c *IDParseCmd) Run(g *Globals) error {
	tw := tabwriter.NewWriter(g.Out, 0, 4, 2, ' ', 0)
	var failed error
	for _, code := range c.Codes {
		parsed, err := g.service.ParseID(context.Background(), c.Country, code)
		if err != nil {
			if dErrors.HasCode(err, dErrors.CodeNotFound) {
				return cliError(err)
			}
			fmt.Fprintf(tw, "%s\t-\t-\tmalformed\n", code)
			failed = errors.Join(failed, fmt.Errorf("%s: %w", code, cliError(err)))
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", parsed.Code, orDash(parsed.Gender), orDash(parsed.DOB), validity(parsed.Valid))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return failed
}

// cliError strips the wrapped cause so users see the domain message only.
func cliError(err error) error {
	if de, ok := dErrors.From(err); ok {
		return errors.New(de.Message)
	}
	return err
}

func validity(ok bool) string {
	if ok {
		return "valid"
	}
	return "invalid"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
