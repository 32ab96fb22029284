package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/chainkit/walletcore/pubkey"

	"github.com/minio/sha256-simd"
	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

var cmdVerify = &cli.Command{
	Name:      "verify",
	Usage:     "verifies a hex-encoded signature over a hex-encoded digest",
	ArgsUsage: "<pubkey-hex> <sig-hex> <digest-hex>",
	Flags: []cli.Flag{
		typeFlag,
		&cli.BoolFlag{
			Name:  "der",
			Usage: "signature is ASN.1 DER encoded (ECDSA only)",
		},
	},
	Action: runVerify,
}

var cmdRecover = &cli.Command{
	Name:      "recover",
	Usage:     "recovers the public key from a 65 byte recoverable ECDSA signature",
	ArgsUsage: "<sig-hex> <digest-hex>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "curve",
			Usage:   "ECDSA curve: secp256k1 or nist256p1",
			Value:   "secp256k1",
			EnvVars: []string{"KEYTOOL_CURVE"},
		},
	},
	Action: runRecover,
}

var cmdDigest = &cli.Command{
	Name:      "digest",
	Usage:     "hashes a message, for use with the verify and recover commands",
	ArgsUsage: "<message>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "hash",
			Usage: "hash function: keccak256, sha256, or blake2b256",
			Value: "keccak256",
		},
		&cli.BoolFlag{
			Name:  "hex",
			Usage: "message argument is hex encoded",
		},
	},
	Action: runDigest,
}

func decodeHexArg(cctx *cli.Context, idx int, name string) ([]byte, error) {
	s := cctx.Args().Get(idx)
	if s == "" {
		return nil, fmt.Errorf("need to provide %s as an argument", name)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%s is not hex encoded: %w", name, err)
	}
	return b, nil
}

func runVerify(cctx *cli.Context) error {
	pub, err := parseKeyArgs(cctx)
	if err != nil {
		return err
	}
	sig, err := decodeHexArg(cctx, 1, "signature")
	if err != nil {
		return err
	}
	digest, err := decodeHexArg(cctx, 2, "digest")
	if err != nil {
		return err
	}

	var ok bool
	if cctx.Bool("der") {
		ok = pub.VerifyDER(sig, digest)
	} else {
		ok = pub.Verify(sig, digest)
	}
	slog.Debug("verified signature", "type", pub.Type(), "sigLen", len(sig), "digestLen", len(digest), "der", cctx.Bool("der"), "valid", ok)
	if !ok {
		return fmt.Errorf("invalid signature")
	}
	fmt.Fprintln(cctx.App.Writer, "valid")
	return nil
}

func runRecover(cctx *cli.Context) error {
	curve, err := pubkey.ParseCurve(cctx.String("curve"))
	if err != nil {
		return err
	}
	sig, err := decodeHexArg(cctx, 0, "signature")
	if err != nil {
		return err
	}
	digest, err := decodeHexArg(cctx, 1, "digest")
	if err != nil {
		return err
	}
	pub, err := pubkey.RecoverCurve(sig, digest, curve)
	if err != nil {
		slog.Debug("recovery failed", "curve", curve, "err", err)
		return err
	}
	printKey(cctx, pub)
	return nil
}

func runDigest(cctx *cli.Context) error {
	if cctx.Args().Len() < 1 {
		return fmt.Errorf("need to provide message as an argument")
	}
	msg := []byte(cctx.Args().First())
	if cctx.Bool("hex") {
		b, err := hex.DecodeString(cctx.Args().First())
		if err != nil {
			return fmt.Errorf("message is not hex encoded: %w", err)
		}
		msg = b
	}

	var sum []byte
	switch cctx.String("hash") {
	case "keccak256", "keccak":
		h := sha3.NewLegacyKeccak256()
		h.Write(msg)
		sum = h.Sum(nil)
	case "sha256":
		s := sha256.Sum256(msg)
		sum = s[:]
	case "blake2b256", "blake2b":
		s := blake2b.Sum256(msg)
		sum = s[:]
	default:
		return fmt.Errorf("unknown hash function: %s", cctx.String("hash"))
	}
	fmt.Fprintln(cctx.App.Writer, hex.EncodeToString(sum))
	return nil
}
