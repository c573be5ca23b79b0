// Command tournamentctl holds operator tasks that run outside the server.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Dosada05/tournament-day/db"
	"github.com/Dosada05/tournament-day/repositories"
	"github.com/Dosada05/tournament-day/utils"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	_ = godotenv.Load()

	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(in io.Reader, out io.Writer) *cli.App {
	databaseFlag := &cli.StringFlag{
		Name:     "database-url",
		Usage:    "postgres connection string",
		EnvVars:  []string{"DATABASE_URL"},
		Required: true,
	}

	return &cli.App{
		Name:      "tournamentctl",
		Usage:     "tournament day operator tasks",
		Reader:    in,
		Writer:    out,
		ErrWriter: out,
		Commands: []*cli.Command{
			{
				Name:  "hash-password",
				Usage: "print a bcrypt hash for ADMIN_PASSWORD_HASH; the password is read from stdin",
				Action: func(c *cli.Context) error {
					password, err := readLine(c.App.Reader)
					if err != nil {
						return err
					}
					hash, err := utils.HashPassword(password)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(c.App.Writer, hash)
					return err
				},
			},
			{
				Name:  "migrate",
				Usage: "apply the embedded schema",
				Flags: []cli.Flag{databaseFlag},
				Action: func(c *cli.Context) error {
					return withDB(c, func(ctx context.Context, conn *sql.DB) error {
						if err := db.Migrate(ctx, conn); err != nil {
							return err
						}
						_, err := fmt.Fprintln(c.App.Writer, "schema applied")
						return err
					})
				},
			},
			{
				Name:  "reset-daily",
				Usage: "clear every check-in now instead of waiting for midnight",
				Flags: []cli.Flag{databaseFlag},
				Action: func(c *cli.Context) error {
					return withDB(c, func(ctx context.Context, conn *sql.DB) error {
						n, err := repositories.NewPostgresRosterRepository(conn).ResetDailyStatus(ctx)
						if err != nil {
							return err
						}
						_, err = fmt.Fprintf(c.App.Writer, "reset %d participant(s)\n", n)
						return err
					})
				},
			},
		},
	}
}

func withDB(c *cli.Context, fn func(ctx context.Context, conn *sql.DB) error) error {
	conn, err := db.Connect(c.String("database-url"), 5*time.Second)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(c.Context, time.Minute)
	defer cancel()
	return fn(ctx, conn)
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("no password on stdin")
	}
	return line, nil
}
