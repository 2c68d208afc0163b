// Package admin implements the dreamjob-admin command line tool: schema
// migrations and user account maintenance.
package admin

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/dreamjob/internal/common"
	"github.com/dmitrijs2005/dreamjob/internal/server/models"
)

type UserService interface {
	Save(ctx context.Context, user *models.User) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
}

// Migrator applies the schema migrations.
type Migrator interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
}

var ErrUsage = errors.New("usage")

const usage = `Usage: dreamjob-admin <command> [args] [flags]

Commands:
  migrate        apply database migrations
  useradd        create a user (prompts for email, name, password)
  users          list users
  userdel <id>   delete a user
`

type App struct {
	db       *sql.DB
	migrator Migrator
	users    UserService
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(db *sql.DB, m Migrator, users UserService, in io.Reader, out io.Writer) *App {
	return &App{db: db, migrator: m, users: users, reader: bufio.NewReader(in), out: out}
}

// Run executes one command. args[0] is the command name.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrUsage
	}

	switch args[0] {
	case "migrate":
		return a.migrate(ctx)
	case "useradd":
		return a.userAdd(ctx)
	case "users":
		return a.list(ctx)
	case "userdel":
		return a.userDel(ctx, args[1:])
	case "help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprintf(a.out, "unknown command %q\n\n%s", args[0], usage)
		return ErrUsage
	}
}

func (a *App) migrate(ctx context.Context) error {
	if err := a.migrator.RunMigrations(ctx, a.db); err != nil {
		return fmt.Errorf("migrations error: %w", err)
	}
	fmt.Fprintln(a.out, "Migrations applied")
	return nil
}

func (a *App) userAdd(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	if email == "" || name == "" || password == "" {
		return fmt.Errorf("%w: email, name and password are required", common.ErrorValidation)
	}

	user, err := a.users.Save(ctx, &models.User{Email: email, Name: name, Password: password})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return fmt.Errorf("user %s already exists", email)
		}
		return err
	}

	fmt.Fprintf(a.out, "User %d created\n", user.ID)
	return nil
}

func (a *App) list(ctx context.Context) error {
	users, err := a.users.FindAll(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMAIL\tNAME")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", u.ID, u.Email, u.Name)
	}
	return tw.Flush()
}

func (a *App) userDel(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: userdel <id>")
		return ErrUsage
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	ok, err := a.users.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("user %d: %w", id, common.ErrorNotFound)
	}

	fmt.Fprintf(a.out, "User %d deleted\n", id)
	return nil
}

// Commands returns the leading positional arguments: the command and its
// operands, up to the first flag.
func Commands(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			return args[:i]
		}
	}
	return args
}
