// dictup adds forms to the local dictionary. Forms are NFD-normalized and
// duplicates are skipped, so re-running an import changes nothing. The
// dictionary lives in a plain text file by default; with --redis it is a
// shared Redis set instead.
package main

import (
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"

	"github.com/atlasling/phondist/wordlist"
)

const defaultDictFile = "data/dictionary.txt"

func main() {
	app := &cli.App{
		Name:      "dictup",
		Usage:     "add forms to the local dictionary",
		ArgsUsage: "FORM [FORM...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Value: defaultDictFile, Usage: "dictionary file"},
			&cli.StringFlag{Name: "redis", Usage: "Redis address; store in Redis instead of a file"},
			&cli.StringFlag{Name: "redis-key", Usage: "Redis set key", Value: wordlist.DefaultRedisKey},
			&cli.BoolFlag{Name: "list", Aliases: []string{"l"}, Usage: "print the stored forms and exit"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	var store wordlist.Store
	if addr := c.String("redis"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		defer client.Close()
		store = wordlist.NewRedisStore(client, c.String("redis-key"))
	} else {
		store = wordlist.NewFileStore(c.String("file"))
	}

	if c.Bool("list") {
		forms, err := store.All(c.Context)
		if err != nil {
			return err
		}
		for _, form := range forms {
			fmt.Println(form)
		}
		return nil
	}

	if c.NArg() == 0 {
		return cli.Exit("no forms given", 1)
	}
	added, err := store.Add(c.Context, c.Args().Slice()...)
	if err != nil {
		return err
	}
	if len(added) == 0 {
		fmt.Println("nothing new to add")
		return nil
	}
	fmt.Printf("added %d form(s): %v\n", len(added), added)
	return nil
}
