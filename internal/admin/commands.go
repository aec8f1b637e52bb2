package admin

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/subcommands"

	"github.com/MKhiriev/go-card-portfolio/internal/catalog"
	"github.com/MKhiriev/go-card-portfolio/internal/config"
	"github.com/MKhiriev/go-card-portfolio/internal/crypto"
	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/internal/sheet"
	"github.com/MKhiriev/go-card-portfolio/internal/store"
)

// OpenFunc opens the workbook configured in cfg.
type OpenFunc func(ctx context.Context, cfg config.Storage, logger *logger.Logger) (sheet.Spreadsheet, error)

// Env is shared by all subcommands.
type Env struct {
	Config *config.StructuredConfig
	Open   OpenFunc
	Logger *logger.Logger

	Out io.Writer
	Err io.Writer
	In  io.Reader
}

// Register adds the admin subcommands to cdr.
func Register(cdr *subcommands.Commander, env *Env) {
	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(cdr.FlagsCommand(), "")
	cdr.Register(cdr.CommandsCommand(), "")
	cdr.Register(&initCmd{env: env}, "workbook")
	cdr.Register(&verifyCmd{env: env}, "workbook")
	cdr.Register(&hashCmd{env: env}, "credentials")
}

func (e *Env) open(ctx context.Context) (sheet.Spreadsheet, func(), error) {
	book, err := e.Open(ctx, e.Config.Storage, e.Logger)
	if err != nil {
		return nil, nil, err
	}
	return book, func() {
		if err := book.Close(); err != nil {
			e.Logger.Error().Err(err).Msg("close workbook")
		}
	}, nil
}

// --- initCmd ---

type initCmd struct {
	env *Env
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create and seed the credential and ownership worksheets" }
func (*initCmd) Usage() string {
	return `portfolio-admin [config flags] init

  Creates the worksheets that are missing and writes the headers, the card
  catalog and the next-free-column pointer. Existing worksheets are kept.
`
}
func (*initCmd) SetFlags(*flag.FlagSet) {}

func (c *initCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cards, err := catalog.BaseSet()
	if err != nil {
		fmt.Fprintf(c.env.Err, "Error loading card catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	book, done, err := c.env.open(ctx)
	if err != nil {
		fmt.Fprintf(c.env.Err, "Error opening workbook: %v\n", err)
		return subcommands.ExitFailure
	}
	defer done()

	layout := store.LayoutFromConfig(c.env.Config.Storage.Worksheets)
	if err := store.Bootstrap(ctx, book, layout, cards, c.env.Logger); err != nil {
		fmt.Fprintf(c.env.Err, "Error seeding workbook: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(c.env.Out, "Workbook ready: %s, %s\n", layout.Credentials, layout.Ownership)
	return subcommands.ExitSuccess
}

// --- verifyCmd ---

type verifyCmd struct {
	env *Env
}

func (*verifyCmd) Name() string     { return "verify" }
func (*verifyCmd) Synopsis() string { return "check the workbook for broken accounts and columns" }
func (*verifyCmd) Usage() string {
	return `portfolio-admin [config flags] verify

  Reports every cell that breaks the workbook layout: duplicate usernames,
  accounts without a column, columns without an account, flags other than
  YES/NO and a pointer that does not name the next free column. Exits with
  status 1 when anything is reported.
`
}
func (*verifyCmd) SetFlags(*flag.FlagSet) {}

func (c *verifyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, done, err := c.env.open(ctx)
	if err != nil {
		fmt.Fprintf(c.env.Err, "Error opening workbook: %v\n", err)
		return subcommands.ExitFailure
	}
	defer done()

	issues, err := store.Verify(ctx, book, store.LayoutFromConfig(c.env.Config.Storage.Worksheets))
	if err != nil {
		fmt.Fprintf(c.env.Err, "Error verifying workbook: %v\n", err)
		return subcommands.ExitFailure
	}

	if len(issues) == 0 {
		fmt.Fprintln(c.env.Out, "No issues found.")
		return subcommands.ExitSuccess
	}

	for _, issue := range issues {
		fmt.Fprintln(c.env.Out, issue)
	}
	fmt.Fprintf(c.env.Out, "%d issue(s) found.\n", len(issues))
	return subcommands.ExitFailure
}

// --- hashCmd ---

type hashCmd struct {
	env *Env
}

func (*hashCmd) Name() string     { return "hash" }
func (*hashCmd) Synopsis() string { return "print the hash of a password" }
func (*hashCmd) Usage() string {
	return `portfolio-admin [config flags] hash [password]

  Hashes the password with the configured hasher. The password is read from
  the first line of standard input when it is not given as an argument.
`
}
func (*hashCmd) SetFlags(*flag.FlagSet) {}

func (c *hashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	password := f.Arg(0)
	if password == "" {
		line, err := bufio.NewReader(c.env.In).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(c.env.Err, "Error reading password: %v\n", err)
			return subcommands.ExitFailure
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		fmt.Fprintln(c.env.Err, "Error: a password is required.")
		return subcommands.ExitUsageError
	}

	hasher, err := crypto.NewPasswordHasher(c.env.Config.App)
	if err != nil {
		fmt.Fprintln(c.env.Err, err)
		return subcommands.ExitFailure
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		fmt.Fprintf(c.env.Err, "Error hashing password: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintln(c.env.Out, hash)
	return subcommands.ExitSuccess
}
