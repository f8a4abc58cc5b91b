package main

import (
	"fmt"

	"github.com/bodgit/tftlayout"
	"github.com/bodgit/tftlayout/store"
	"github.com/urfave/cli/v2"
)

func openStore(c *cli.Context, e *env) (*store.Store, error) {
	path := e.cfg.Store.Path
	if c.IsSet("db") {
		path = c.String("db")
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, &tftlayout.Error{Kind: tftlayout.ErrIO, Op: "store", Path: path, Err: err}
	}
	return s, nil
}

func withStore(c *cli.Context, args int, fn func(*env, *store.Store) error) error {
	if c.NArg() < args {
		cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
	}

	e, err := setup(c)
	if err != nil {
		return err
	}

	s, err := openStore(c, e)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer s.Close()

	if err := fn(e, s); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func storePut(c *cli.Context) error {
	return withStore(c, 1, func(e *env, s *store.Store) error {
		// Round trip through the compiler so only loadable layouts are stored
		compiler, err := e.open(true)
		if err != nil {
			return err
		}
		b, err := compiler.SaveLayout().MarshalIndent()
		if err != nil {
			return err
		}

		name := c.Args().First()
		changed, err := s.Put(name, b)
		if err != nil {
			return err
		}
		if changed {
			e.printf("stored", name)
		} else {
			e.printf("unchanged", name)
		}
		return nil
	})
}

func storeGet(c *cli.Context) error {
	return withStore(c, 1, func(e *env, s *store.Store) error {
		b, err := s.Get(c.Args().First())
		if err != nil {
			return err
		}

		doc, err := tftlayout.ParseDocument(b)
		if err != nil {
			return err
		}

		compiler := tftlayout.New(e.cfg, e.logger)
		if err := e.load(compiler, doc, true); err != nil {
			return err
		}

		if err := e.save(compiler); err != nil {
			return err
		}
		e.printf("saved", e.layout)
		return nil
	})
}

func storeList(c *cli.Context) error {
	return withStore(c, 0, func(e *env, s *store.Store) error {
		entries, err := s.List()
		if err != nil {
			return err
		}
		for _, entry := range entries {
			fmt.Fprintf(e.w, "%s\t%s\t%s\n", entry.Name, entry.Modified.Format("2006-01-02 15:04:05"), entry.SHA1[:8])
		}
		return nil
	})
}

func storeDelete(c *cli.Context) error {
	return withStore(c, 1, func(e *env, s *store.Store) error {
		name := c.Args().First()
		if err := s.Delete(name); err != nil {
			return err
		}
		e.printf("removed", name)
		return nil
	})
}
