package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/chainkit/walletcore/pubkey"

	"github.com/urfave/cli/v2"
)

var typeFlag = &cli.StringFlag{
	Name:    "type",
	Aliases: []string{"t"},
	Usage:   "public key type (eg: secp256k1, secp256k1-extended, nist256p1, ed25519, ed25519-blake2b, curve25519)",
	EnvVars: []string{"KEYTOOL_KEY_TYPE"},
}

var cmdInspect = &cli.Command{
	Name:      "inspect",
	Usage:     "parses and outputs metadata about a hex-encoded public key",
	ArgsUsage: "<pubkey-hex>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Usage:   "public key type; when not set, every type with a matching length is tried",
		},
	},
	Action: runInspect,
}

var cmdConvert = &cli.Command{
	Name:      "convert",
	Usage:     "converts an ECDSA public key between compressed and extended encodings",
	ArgsUsage: "<pubkey-hex>",
	Flags: []cli.Flag{
		typeFlag,
		&cli.StringFlag{
			Name:  "to",
			Usage: "target encoding: compressed or extended",
			Value: "extended",
		},
	},
	Action: runConvert,
}

var cmdDID = &cli.Command{
	Name:      "did",
	Usage:     "parses a did:key or multibase public key, and outputs the hex encoding",
	ArgsUsage: "<did-key-or-multibase>",
	Action:    runDID,
}

var cmdJWK = &cli.Command{
	Name:      "jwk",
	Usage:     "outputs a hex-encoded public key as JWK JSON",
	ArgsUsage: "<pubkey-hex>",
	Flags: []cli.Flag{
		typeFlag,
	},
	Action: runJWK,
}

func parseKeyArgs(cctx *cli.Context) (*pubkey.PublicKey, error) {
	s := cctx.Args().First()
	if s == "" {
		return nil, fmt.Errorf("need to provide public key as an argument")
	}
	if cctx.String("type") == "" {
		return nil, fmt.Errorf("need to provide public key type (--type)")
	}
	kt, err := pubkey.ParseKeyType(cctx.String("type"))
	if err != nil {
		return nil, err
	}
	pub, err := pubkey.ParsePublicHex(s, kt)
	if err != nil {
		slog.Debug("failed to parse public key", "type", kt, "err", err)
		return nil, err
	}
	return pub, nil
}

func printKey(cctx *cli.Context, pub *pubkey.PublicKey) {
	out := cctx.App.Writer
	fmt.Fprintf(out, "Type: %s (%s)\n", pub.Type(), pub.Type().Algorithm())
	fmt.Fprintf(out, "Compressed: %t\n", pub.IsCompressed())
	fmt.Fprintf(out, "Hex: %s\n", pub)
	if comp, err := pub.Compressed(); err == nil {
		fmt.Fprintf(out, "As Compressed: %s\n", comp)
	}
	if ext, err := pub.Extended(); err == nil {
		fmt.Fprintf(out, "As Extended: %s\n", ext)
	}
	if didKey, err := pub.DIDKey(); err == nil {
		fmt.Fprintf(out, "As DID Key: %s\n", didKey)
	}
}

func runInspect(cctx *cli.Context) error {
	s := cctx.Args().First()
	if s == "" {
		return fmt.Errorf("need to provide public key as an argument")
	}

	if cctx.String("type") != "" {
		pub, err := parseKeyArgs(cctx)
		if err != nil {
			return err
		}
		printKey(cctx, pub)
		return nil
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("public key is not hex encoded: %w", err)
	}
	found := false
	for _, kt := range pubkey.KeyTypes() {
		if kt.Size() != len(raw) {
			continue
		}
		pub, err := pubkey.NewPublicKey(raw, kt)
		if err != nil {
			slog.Debug("not a valid key of type", "type", kt, "err", err)
			continue
		}
		if found {
			fmt.Fprintln(cctx.App.Writer)
		}
		found = true
		printKey(cctx, pub)
	}
	if !found {
		return fmt.Errorf("not a valid public key of any known type (len=%d)", len(raw))
	}
	return nil
}

func runConvert(cctx *cli.Context) error {
	pub, err := parseKeyArgs(cctx)
	if err != nil {
		return err
	}
	var conv *pubkey.PublicKey
	switch cctx.String("to") {
	case "compressed":
		conv, err = pub.Compressed()
	case "extended", "uncompressed":
		conv, err = pub.Extended()
	default:
		return fmt.Errorf("unknown target encoding: %s", cctx.String("to"))
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, conv)
	return nil
}

func runDID(cctx *cli.Context) error {
	s := cctx.Args().First()
	if s == "" {
		return fmt.Errorf("need to provide did:key or multibase as an argument")
	}
	pub, err := pubkey.ParsePublicDIDKey(s)
	if err != nil {
		slog.Debug("not a did:key, trying multibase", "err", err)
		pub, err = pubkey.ParsePublicMultibase(s)
		if err != nil {
			return err
		}
	}
	printKey(cctx, pub)
	return nil
}

func runJWK(cctx *cli.Context) error {
	pub, err := parseKeyArgs(cctx)
	if err != nil {
		return err
	}
	jwk, err := pub.JWK()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(jwk, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, string(b))
	return nil
}
