// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/socialledgerd/command/socialledger-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "socialledger-cli"
	app.Usage = "client for the socialledgerd RPC interface"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` [$XDG_CONFIG_HOME/socialledger-cli/socialledger-cli.json]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}

	idFlag := func(usage string) cli.Flag {
		return cli.StringFlag{
			Name:  "id",
			Value: "",
			Usage: usage,
		}
	}
	profileFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "username, u",
			Value: "",
			Usage: "*user name `STRING`",
		},
		cli.StringFlag{
			Name:  "image",
			Value: "",
			Usage: " profile image `URL`",
		},
		cli.StringFlag{
			Name:  "background-image",
			Value: "",
			Usage: " background image `URL`",
		},
		cli.StringFlag{
			Name:  "description, d",
			Value: "",
			Usage: " profile description `STRING`",
		},
		cli.StringFlag{
			Name:  "social-link, l",
			Value: "",
			Usage: " social link `URL`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a private key, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "schnorr, s",
					Usage: " generate a schnorr key instead of ed25519",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise socialledger-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect",
					Value: "",
					Usage: "*socialledgerd host/IP and port, `HOST:PORT[,...]`",
				},
				cli.BoolFlag{
					Name:  "plain",
					Usage: " connect without TLS",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "privateKey, k",
					Value: "",
					Usage: " using existing base58 private `KEY`",
				},
				cli.BoolFlag{
					Name:  "schnorr, s",
					Usage: " generate a schnorr key instead of ed25519",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "privateKey, k",
					Value: "",
					Usage: " using existing base58 private `KEY`",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " receive only identity for `ACCOUNT`",
				},
				cli.BoolFlag{
					Name:  "schnorr, s",
					Usage: " generate a schnorr key instead of ed25519",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "create-user",
			Usage:     "create a user token for the identity",
			ArgsUsage: "\n   (* = required)",
			Flags:     profileFlags,
			Action:    runCreateUser,
		},
		{
			Name:      "update-user",
			Usage:     "replace the profile of the identity's user",
			ArgsUsage: "\n   (* = required)",
			Flags:     profileFlags,
			Action:    runUpdateUser,
		},
		{
			Name:      "follow",
			Usage:     "follow a creator",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag("*creator user `ID`")},
			Action:    runFollow,
		},
		{
			Name:      "unfollow",
			Usage:     "stop following a creator",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag("*creator user `ID`")},
			Action:    runUnfollow,
		},
		{
			Name:      "rate",
			Usage:     "rate a creator",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag("*creator user `ID`"),
				cli.Uint64Flag{
					Name:  "rating, r",
					Value: 0,
					Usage: "*rating `NUMBER`",
				},
			},
			Action: runRate,
		},
		{
			Name:      "get-user",
			Usage:     "display a user",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag("*user `ID`")},
			Action:    runGetUser,
		},
		{
			Name:      "user-id",
			Usage:     "display the user token id of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
			},
			Action: runUserID,
		},
		{
			Name:      "list-users",
			Usage:     "list registered users",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " start from user `ID`",
				},
				cli.IntFlag{
					Name:  "count",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runListUsers,
		},
		{
			Name:      "create-content",
			Usage:     "publish content as the identity's user",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "body, b",
					Value: "",
					Usage: "*content body `STRING`",
				},
				cli.StringFlag{
					Name:  "tags, t",
					Value: "",
					Usage: " content tags `STRING`",
				},
				cli.StringFlag{
					Name:  "authors, a",
					Value: "",
					Usage: " content authors `STRING`",
				},
				cli.BoolFlag{
					Name:  "public",
					Usage: " make the content public",
				},
			},
			Action: runCreateContent,
		},
		{
			Name:      "update-content",
			Usage:     "change content visibility",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag("*content `ID`"),
				cli.BoolFlag{
					Name:  "public",
					Usage: " make the content public (default private)",
				},
			},
			Action: runUpdateContent,
		},
		{
			Name:      "like",
			Usage:     "like content",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag("*content `ID`")},
			Action:    runLike,
		},
		{
			Name:      "dislike",
			Usage:     "remove a like from content",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag("*content `ID`")},
			Action:    runDislike,
		},
		{
			Name:      "get-content",
			Usage:     "display content without counting a view",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag("*content `ID`")},
			Action:    runGetContent,
		},
		{
			Name:      "view-content",
			Usage:     "display content and count a view",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag("*content `ID`")},
			Action:    runViewContent,
		},
		{
			Name:      "list-contents",
			Usage:     "list content created by a user",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag("*user `ID`")},
			Action:    runListContents,
		},
		{
			Name:      "flag-user",
			Usage:     "admin: flag or unflag a user",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag("*user `ID`"),
				cli.BoolFlag{
					Name:  "clear",
					Usage: " clear the flag instead of setting it",
				},
			},
			Action: runFlagUser,
		},
		{
			Name:      "set-user-token",
			Usage:     "admin: register the user token registry",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*registry `ADDRESS`",
				},
			},
			Action: runSetUserToken,
		},
		{
			Name:      "set-content-token",
			Usage:     "admin: register the content token registry",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*registry `ADDRESS`",
				},
			},
			Action: runSetContentToken,
		},
		{
			Name:   "info",
			Usage:  "display socialledger-cli identities",
			Action: runInfo,
		},
		{
			Name:   "node-info",
			Usage:  "display socialledgerd status",
			Action: runNodeInfo,
		},
		{
			Name:  "version",
			Usage: "display socialledger-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "generate", "help", "h":
			return nil
		}

		file, err := configFile(c.GlobalString("config"), app.Name)
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		config, err := configuration.Load(file)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			save:    false,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if m.verbose {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			return configuration.Save(m.file, m.config)
		}
		return nil
	}

	return app
}

// explicit file or the default under XDG_CONFIG_HOME
func configFile(file string, name string) (string, error) {
	if "" != file {
		return os.ExpandEnv(file), nil
	}

	p := os.Getenv("XDG_CONFIG_HOME")
	if "" == p {
		return "", fmt.Errorf("XDG_CONFIG_HOME environment is not set")
	}
	dir, err := checkFileExists(p)
	if nil != err {
		return "", err
	}
	if !dir {
		return "", fmt.Errorf("not a directory: %q", p)
	}
	return path.Join(p, name, name+".json"), nil
}
