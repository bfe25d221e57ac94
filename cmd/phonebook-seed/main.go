// Command phonebook-seed lists the phonebook or adds one entry to it,
// talking to SurrealDB directly rather than through the HTTP API.
//
//	phonebook-seed <password>               list every person
//	phonebook-seed <password> <name> <num>  add a person
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/forgo/phonebook/internal/config"
	"github.com/forgo/phonebook/internal/database"
	"github.com/forgo/phonebook/internal/model"
	"github.com/forgo/phonebook/internal/repository"
)

var errNoPassword = errors.New("give password as argument")

// personStore is the part of the repository the command needs
type personStore interface {
	List(ctx context.Context) ([]*model.Person, error)
	Create(ctx context.Context, in *model.PersonInput) (*model.Person, error)
}

// openFunc connects to the store with the given password. The returned
// func releases the connection.
type openFunc func(ctx context.Context, password string) (personStore, func(), error)

func main() {
	if err := newRootCmd(os.Stdout, openSurreal).Execute(); err != nil {
		if !errors.Is(err, errNoPassword) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer, open openFunc) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "phonebook-seed <password> [name number]",
		Short: "List or add phonebook entries",
		Long: `List every stored person, or add one.

With only a password the command prints each person as "name number".
With a name and a number it stores a new person.
Connection settings other than the password come from the DB_* environment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				fmt.Fprintln(out, errNoPassword.Error())
				return errNoPassword
			case 1, 3:
				return nil
			case 2:
				return errors.New("number missing: give both name and number")
			default:
				return fmt.Errorf("too many arguments: expected at most 3, got %d", len(args))
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			store, closeStore, err := open(ctx, args[0])
			if err != nil {
				return err
			}
			defer closeStore()

			if len(args) == 1 {
				return listPeople(ctx, out, store)
			}
			return addPerson(ctx, out, store, args[1], args[2])
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "give up after this long")
	return cmd
}

func listPeople(ctx context.Context, out io.Writer, store personStore) error {
	people, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("listing people: %w", err)
	}

	fmt.Fprintln(out, "phonebook:")
	for _, p := range people {
		fmt.Fprintf(out, "%s %s\n", p.Name, p.Number)
	}
	return nil
}

func addPerson(ctx context.Context, out io.Writer, store personStore, name, number string) error {
	person, err := store.Create(ctx, &model.PersonInput{Name: &name, Number: &number})
	if err != nil {
		return fmt.Errorf("adding person: %w", err)
	}

	fmt.Fprintf(out, "added %s number %s to phonebook\n", person.Name, person.Number)
	return nil
}

// openSurreal connects using the environment configuration with the
// password swapped in, and makes sure the schema exists.
func openSurreal(ctx context.Context, password string) (personStore, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	db := database.NewSurrealDB(database.Config{
		URL:       cfg.Database.URL,
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})
	if err := db.Connect(ctx); err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return repository.NewPersonRepository(db), func() { _ = db.Close() }, nil
}
