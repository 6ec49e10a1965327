package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog/v2"
	"github.com/urfave/cli"
	"jayconrod.com/cryptokit/crypto"
)

const defaultDebugLevel = "info"

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[cryptokit] %v\n", err)
	os.Exit(1)
}

// setupLogging points the crypto package logger at stderr with the given
// level.
func setupLogging(level string) error {
	lvl, ok := btclog.LevelFromString(level)
	if !ok {
		return fmt.Errorf("the specified debug level [%v] is invalid", level)
	}
	handler := btclog.NewDefaultHandler(os.Stderr, btclog.WithNoTimestamp())
	logger := btclog.NewSLogger(handler.SubSystem(crypto.Subsystem))
	logger.SetLevel(lvl)
	crypto.UseLogger(logger)
	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "cryptokit"
	app.Usage = "break XOR ciphers, spot ECB and run CBC by hand"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name: "debuglevel",
			Usage: "Logging level for the analysis engine: trace, " +
				"debug, info, warn, error, critical or off.",
			Value: defaultDebugLevel,
		},
		cli.StringFlag{
			Name: "cipher",
			Usage: fmt.Sprintf("The block cipher used by the ECB and "+
				"CBC commands, one of %v.", crypto.PrimitiveNames()),
			Value: "aes",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		return setupLogging(ctx.GlobalString("debuglevel"))
	}
	app.Commands = []cli.Command{
		xorByteCommand,
		detectXORCommand,
		breakXORCommand,
		repeatXORCommand,
		detectECBCommand,
		ecbDecryptCommand,
		cbcEncryptCommand,
		cbcDecryptCommand,
		padCommand,
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fatal(err)
	}
}
