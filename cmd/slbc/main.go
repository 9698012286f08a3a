// slbc - Sanskrit Linguistic Binary Codec CLI tool
//
// Usage:
//
//	slbc encode [file]                         IAST text -> .slbc container (pāṭha mode)
//	slbc decode [--to iast|devanagari] [file]  .slbc container -> text
//	slbc extract --mode patha|bhasha-only|vyakhya [file]
//	slbc inspect --byte <n> | --from-hex <hex>
//	slbc transform --op <op> --byte <n>
//	slbc roundtrip [file]                      encode then decode, report first disagreement
//	slbc annotate --add vya --from <json> [--sldr f] [--slpr f] [--slsr f] [file]
//	slbc registry compile --kind <k> --tsv <file> [--zstd]
//	slbc registry inspect [file]
//	slbc registry lookup --id <n> [file]
//	slbc registry stats [file]
//
// If no file is given, reads from stdin; output is written to stdout.
package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/abhyagra/slbc/container"
	"github.com/abhyagra/slbc/extract"
	"github.com/abhyagra/slbc/registry"
	"github.com/abhyagra/slbc/slbc"
)

// Exit codes per the external-interfaces spec: 0 success, 1 user
// error, 2 format error, 3 I/O error.
const (
	ExitOK          = 0
	ExitUserError   = 1
	ExitFormatError = 2
	ExitIOError     = 3
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(ExitUserError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "encode":
		cmdEncode(args)
	case "decode":
		cmdDecode(args)
	case "extract":
		cmdExtract(args)
	case "inspect":
		cmdInspect(args)
	case "transform":
		cmdTransform(args)
	case "roundtrip":
		cmdRoundtrip(args)
	case "annotate":
		cmdAnnotate(args)
	case "registry":
		cmdRegistry(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "slbc: unknown command: %s\n", cmd)
		printUsage()
		os.Exit(ExitUserError)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `slbc - Sanskrit Linguistic Binary Codec CLI

Usage:
  slbc encode [file]                           IAST text -> .slbc container
  slbc decode [--to iast|devanagari] [--strict] [file]  .slbc container -> text
  slbc extract --mode patha|bhasha-only|vyakhya [file]
  slbc inspect --byte <n> | --from-hex <hex>
  slbc transform --op <op> --byte <n> [--byte2 <n>]
    ops: guna, vrddhi, dirgha, hrasva, jastva, toggle-voice,
         toggle-aspiration, nasal, homorganic-nasal, samprasarana,
         samprasarana-reverse, savarna-dirgha (needs --byte2)
  slbc roundtrip [file]
  slbc annotate --add vya --from <json> [--sldr f] [--slpr f] [--slsr f] [--strict] [file]
  slbc registry compile --kind dhatu|pratipadika|sandhi-rule --tsv <file> [--zstd]
  slbc registry inspect [file]
  slbc registry lookup --id <n> [file]
  slbc registry stats [file]

If no file is given, reads from stdin.
`)
}

// ============================================================
// Flag helpers (manual os.Args parsing, no flag package, matching the
// teacher's cmd/glyph/main.go style)
// ============================================================

// extractFlag pulls a "--name value" or "--name=value" pair out of
// args, returning its value, whether it was present, and the
// remaining arguments (positional args and unrecognized flags).
func extractFlag(args []string, name string) (string, bool, []string) {
	prefix := "--" + name
	var rest []string
	value := ""
	found := false
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == prefix:
			found = true
			if i+1 < len(args) {
				value = args[i+1]
				i++
			}
		case strings.HasPrefix(a, prefix+"="):
			found = true
			value = strings.TrimPrefix(a, prefix+"=")
		default:
			rest = append(rest, a)
		}
	}
	return value, found, rest
}

// hasFlag reports whether a bare boolean flag (e.g. --zstd) is
// present, returning the remaining arguments.
func hasFlag(args []string, name string) (bool, []string) {
	prefix := "--" + name
	var rest []string
	found := false
	for _, a := range args {
		if a == prefix {
			found = true
			continue
		}
		rest = append(rest, a)
	}
	return found, rest
}

func readInput(args []string) []byte {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			ioFatal("read file: %v", err)
		}
		return data
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		ioFatal("read stdin: %v", err)
	}
	return data
}

func userFatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "slbc: "+format+"\n", args...)
	os.Exit(ExitUserError)
}

func formatFatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "slbc: "+format+"\n", args...)
	os.Exit(ExitFormatError)
}

func ioFatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "slbc: "+format+"\n", args...)
	os.Exit(ExitIOError)
}

// ============================================================
// encode / decode
// ============================================================

func cmdEncode(args []string) {
	text := string(readInput(args))
	text = strings.TrimRight(text, "\n")

	encoded, err := slbc.EncodeIAST(text, slbc.EncodeOptions{})
	if err != nil {
		userFatal("encode: %v", err)
	}

	file := container.BuildSimple(container.HeaderOptions{
		HasLipi:     true,
		Interleaved: true,
		Numeral:     bytes.Contains(encoded, []byte{slbc.SankhyaStart}),
	}, container.ChunkPhon, encoded)

	if _, err := os.Stdout.Write(file); err != nil {
		ioFatal("write stdout: %v", err)
	}
}

func cmdDecode(args []string) {
	toFlag, _, rest := extractFlag(args, "to")
	if toFlag == "" {
		toFlag = "iast"
	}
	strict, rest := hasFlag(rest, "strict")

	var script slbc.Script
	switch toFlag {
	case "iast":
		script = slbc.ScriptIAST
	case "devanagari":
		script = slbc.ScriptDevanagari
	default:
		userFatal("decode: unknown --to value %q (want iast|devanagari)", toFlag)
	}

	data := readInput(rest)
	_, chunks, err := parseContainer(data, strict)
	if err != nil {
		formatFatal("decode: %v", err)
	}

	payload, ok := firstPhonPayload(chunks)
	if !ok {
		formatFatal("decode: no PHON/BHA chunk in file")
	}

	text, err := slbc.DecodeToText(payload, script)
	if err != nil {
		formatFatal("decode: %v", err)
	}
	fmt.Println(text)
}

func parseContainer(data []byte, strict bool) (container.Header, []container.Chunk, error) {
	if strict {
		return container.ParseFileStrict(data)
	}
	return container.ParseFile(data)
}

func firstPhonPayload(chunks []container.Chunk) ([]byte, bool) {
	for _, c := range chunks {
		if c.Type == container.ChunkPhon || c.Type == container.ChunkBha {
			return c.Payload, true
		}
	}
	return nil, false
}

// ============================================================
// extract
// ============================================================

func cmdExtract(args []string) {
	modeFlag, found, rest := extractFlag(args, "mode")
	if !found {
		userFatal("extract: --mode is required")
	}
	mode, ok := extract.ParseMode(modeFlag)
	if !ok {
		userFatal("extract: unknown --mode value %q", modeFlag)
	}

	data := readInput(rest)
	out, err := extract.Extract(data, mode)
	if err != nil {
		formatFatal("extract: %v", err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		ioFatal("write stdout: %v", err)
	}
}

// ============================================================
// inspect
// ============================================================

func cmdInspect(args []string) {
	byteFlag, hasByte, rest := extractFlag(args, "byte")
	hexFlag, hasHex, rest2 := extractFlag(rest, "from-hex")

	switch {
	case hasByte:
		n, err := strconv.ParseUint(byteFlag, 0, 8)
		if err != nil {
			userFatal("inspect: invalid --byte value %q: %v", byteFlag, err)
		}
		fmt.Println(slbc.Inspect(byte(n)).String())

	case hasHex:
		raw, err := hex.DecodeString(hexFlag)
		if err != nil {
			userFatal("inspect: invalid --from-hex value: %v", err)
		}
		for _, b := range raw {
			fmt.Println(slbc.Inspect(b).String())
		}

	default:
		_ = rest2
		userFatal("inspect: one of --byte or --from-hex is required")
	}
}

// ============================================================
// transform
// ============================================================

func cmdTransform(args []string) {
	opFlag, hasOp, rest := extractFlag(args, "op")
	byteFlag, hasByte, rest := extractFlag(rest, "byte")
	byte2Flag, hasByte2, _ := extractFlag(rest, "byte2")
	if !hasOp || !hasByte {
		userFatal("transform: --op and --byte are required")
	}

	n, err := strconv.ParseUint(byteFlag, 0, 8)
	if err != nil {
		userFatal("transform: invalid --byte value %q: %v", byteFlag, err)
	}
	in := byte(n)

	var out byte
	switch opFlag {
	case "guna":
		out, err = slbc.Guna(in)
	case "vrddhi":
		out, err = slbc.Vrddhi(in)
	case "dirgha":
		out, err = slbc.Dirgha(in)
	case "hrasva":
		out, err = slbc.Hrasva(in)
	case "jastva":
		out, err = slbc.Jastva(in)
	case "toggle-voice":
		out, err = slbc.ToggleVoice(in)
	case "toggle-aspiration":
		out, err = slbc.ToggleAspiration(in)
	case "nasal":
		out, err = slbc.MakeNasal(in)
	case "homorganic-nasal":
		out, err = slbc.HomorganicNasalFor(in)
	case "samprasarana":
		out, err = slbc.SamprasaranaToSvara(in)
	case "samprasarana-reverse":
		out, err = slbc.SamprasaranaToSonorant(in)
	case "savarna-dirgha":
		if !hasByte2 {
			userFatal("transform: --op savarna-dirgha requires --byte2")
		}
		n2, perr := strconv.ParseUint(byte2Flag, 0, 8)
		if perr != nil {
			userFatal("transform: invalid --byte2 value %q: %v", byte2Flag, perr)
		}
		out, err = slbc.SavarnaDirgha(in, byte(n2))
	default:
		userFatal("transform: unknown --op value %q", opFlag)
	}

	if err != nil {
		userFatal("transform: %v", err)
	}
	fmt.Println(slbc.Inspect(out).String())
}

// ============================================================
// roundtrip
// ============================================================

func cmdRoundtrip(args []string) {
	original := strings.TrimRight(string(readInput(args)), "\n")

	encoded, err := slbc.EncodeIAST(original, slbc.EncodeOptions{})
	if err != nil {
		userFatal("roundtrip: encode: %v", err)
	}
	decoded, err := slbc.DecodeToText(encoded, slbc.ScriptIAST)
	if err != nil {
		formatFatal("roundtrip: decode: %v", err)
	}

	if decoded == original {
		fmt.Println("OK")
		return
	}

	origRunes := []rune(original)
	decRunes := []rune(decoded)
	mismatch := 0
	for mismatch < len(origRunes) && mismatch < len(decRunes) && origRunes[mismatch] == decRunes[mismatch] {
		mismatch++
	}
	fmt.Fprintf(os.Stderr, "slbc: roundtrip mismatch at rune %d: %q != %q\n", mismatch, original, decoded)
	os.Exit(ExitFormatError)
}

// ============================================================
// annotate
// ============================================================

// annotation is one vyākaraṇa META block to inject. The sub-tag
// payload is carried through uninterpreted (TBD-2): only the tag kind
// (karaka/sandhi) and raw hex bytes are meaningful here.
type annotation struct {
	AfterPada int    `json:"after_pada"`
	Tag       string `json:"tag"`
	DataHex   string `json:"data_hex"`
}

func cmdAnnotate(args []string) {
	addFlag, hasAdd, rest := extractFlag(args, "add")
	if !hasAdd || addFlag != "vya" {
		userFatal("annotate: --add vya is required")
	}
	fromFlag, hasFrom, rest := extractFlag(rest, "from")
	if !hasFrom {
		userFatal("annotate: --from <json> is required")
	}
	sldrFlag, _, rest := extractFlag(rest, "sldr")
	slprFlag, _, rest := extractFlag(rest, "slpr")
	slsrFlag, _, rest := extractFlag(rest, "slsr")
	strict, rest := hasFlag(rest, "strict")

	for name, path := range map[string]string{"sldr": sldrFlag, "slpr": slprFlag, "slsr": slsrFlag} {
		if path == "" {
			continue
		}
		if err := validateRegistryFile(name, path); err != nil {
			userFatal("annotate: %v", err)
		}
	}

	annotationsRaw, err := os.ReadFile(fromFlag)
	if err != nil {
		ioFatal("annotate: read %s: %v", fromFlag, err)
	}
	var annotations []annotation
	if err := json.Unmarshal(annotationsRaw, &annotations); err != nil {
		userFatal("annotate: parse %s: %v", fromFlag, err)
	}

	data := readInput(rest)
	header, chunks, err := parseContainer(data, strict)
	if err != nil {
		formatFatal("annotate: %v", err)
	}

	payload, ok := firstPhonPayload(chunks)
	if !ok {
		formatFatal("annotate: no PHON/BHA chunk in file")
	}

	events, err := slbc.DecodeToEvents(payload)
	if err != nil {
		formatFatal("annotate: %v", err)
	}

	annotated, err := injectAnnotations(events, annotations)
	if err != nil {
		userFatal("annotate: %v", err)
	}

	out, err := slbc.EncodeEvents(annotated)
	if err != nil {
		formatFatal("annotate: %v", err)
	}

	newHeader := container.BuildHeader(container.HeaderOptions{
		HasLipi:     header.HasLipi(),
		HasMeta:     true,
		Interleaved: header.Interleaved(),
		Vedic:       header.Vedic(),
		Vya:         true,
		Numeral:     bytes.Contains(out, []byte{slbc.SankhyaStart}),
	})
	w := container.NewWriter(newHeader)
	w.WriteChunk(container.ChunkPhon, out)
	w.WriteEOF()

	if _, err := os.Stdout.Write(w.Bytes()); err != nil {
		ioFatal("write stdout: %v", err)
	}
}

func injectAnnotations(events []slbc.Event, annotations []annotation) ([]slbc.Event, error) {
	byPada := make(map[int][][]byte)
	for _, a := range annotations {
		var tag byte
		switch a.Tag {
		case "karaka":
			tag = slbc.MetaKarakaTag
		case "sandhi":
			tag = slbc.MetaSandhiTag
		default:
			return nil, fmt.Errorf("unknown annotation tag %q", a.Tag)
		}
		raw, err := hex.DecodeString(a.DataHex)
		if err != nil {
			return nil, fmt.Errorf("invalid data_hex for pada %d: %w", a.AfterPada, err)
		}
		meta := append([]byte{slbc.MetaStart, tag}, raw...)
		meta = append(meta, slbc.MetaEnd)
		byPada[a.AfterPada] = append(byPada[a.AfterPada], meta)
	}

	var out []slbc.Event
	padaIndex := 0
	for _, ev := range events {
		out = append(out, ev)
		if ev.Kind == slbc.EvPadaEnd {
			for _, meta := range byPada[padaIndex] {
				out = append(out, slbc.Event{Kind: slbc.EvMetaEnvelope, Meta: meta})
			}
			padaIndex++
		}
	}
	return out, nil
}

func validateRegistryFile(name, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s (%s): %w", name, path, err)
	}
	raw, err = registry.DecompressIfNeeded(raw)
	if err != nil {
		return fmt.Errorf("%s (%s): %w", name, path, err)
	}
	if _, _, err := registry.ReadBinary(raw); err != nil {
		return fmt.Errorf("%s (%s): %w", name, path, err)
	}
	return nil
}

// ============================================================
// registry
// ============================================================

func cmdRegistry(args []string) {
	if len(args) < 1 {
		userFatal("registry: missing subcommand (compile, inspect, lookup, stats)")
	}
	sub := args[0]
	rest := args[1:]

	switch sub {
	case "compile":
		cmdRegistryCompile(rest)
	case "inspect":
		cmdRegistryInspect(rest)
	case "lookup":
		cmdRegistryLookup(rest)
	case "stats":
		cmdRegistryStats(rest)
	default:
		userFatal("registry: unknown subcommand %q", sub)
	}
}

func parseKind(s string) (registry.Kind, bool) {
	switch s {
	case "dhatu":
		return registry.KindDhatu, true
	case "pratipadika":
		return registry.KindPratipadika, true
	case "sandhi-rule":
		return registry.KindSandhiRule, true
	default:
		return 0, false
	}
}

func cmdRegistryCompile(args []string) {
	kindFlag, hasKind, rest := extractFlag(args, "kind")
	tsvFlag, hasTSV, rest := extractFlag(rest, "tsv")
	useZstd, _ := hasFlag(rest, "zstd")

	if !hasKind || !hasTSV {
		userFatal("registry compile: --kind and --tsv are required")
	}
	kind, ok := parseKind(kindFlag)
	if !ok {
		userFatal("registry compile: unknown --kind value %q", kindFlag)
	}

	f, err := os.Open(tsvFlag)
	if err != nil {
		ioFatal("registry compile: open %s: %v", tsvFlag, err)
	}
	defer f.Close()

	entries, err := registry.CompileTSV(kind, f)
	if err != nil {
		userFatal("registry compile: %v", err)
	}

	body, err := registry.WriteBinary(kind, entries)
	if err != nil {
		userFatal("registry compile: %v", err)
	}

	if useZstd {
		body, err = registry.CompressBinary(body)
		if err != nil {
			ioFatal("registry compile: %v", err)
		}
	}

	if _, err := os.Stdout.Write(body); err != nil {
		ioFatal("write stdout: %v", err)
	}
}

func cmdRegistryInspect(args []string) {
	data, err := registry.DecompressIfNeeded(readInput(args))
	if err != nil {
		formatFatal("registry inspect: %v", err)
	}
	kind, entries, err := registry.ReadBinary(data)
	if err != nil {
		formatFatal("registry inspect: %v", err)
	}
	fmt.Printf("kind=%s entries=%d\n", kind, len(entries))
	for _, e := range entries {
		fmt.Printf("  id=%d iast=%q\n", e.ID, e.IAST)
	}
}

func cmdRegistryLookup(args []string) {
	idFlag, hasID, rest := extractFlag(args, "id")
	if !hasID {
		userFatal("registry lookup: --id is required")
	}
	id, err := strconv.ParseUint(idFlag, 10, 64)
	if err != nil {
		userFatal("registry lookup: invalid --id value %q: %v", idFlag, err)
	}

	data, err := registry.DecompressIfNeeded(readInput(rest))
	if err != nil {
		formatFatal("registry lookup: %v", err)
	}
	_, entries, err := registry.ReadBinary(data)
	if err != nil {
		formatFatal("registry lookup: %v", err)
	}

	for _, e := range entries {
		if e.ID == id {
			fmt.Printf("id=%d iast=%q\n", e.ID, e.IAST)
			return
		}
	}
	userFatal("registry lookup: ID %d not found", id)
}

func cmdRegistryStats(args []string) {
	data, err := registry.DecompressIfNeeded(readInput(args))
	if err != nil {
		formatFatal("registry stats: %v", err)
	}
	kind, entries, err := registry.ReadBinary(data)
	if err != nil {
		formatFatal("registry stats: %v", err)
	}

	standard, extensions := 0, 0
	for _, e := range entries {
		if e.ID <= registry.StandardIDMax {
			standard++
		} else {
			extensions++
		}
	}
	fmt.Printf("kind=%s total=%d standard=%d extensions=%d\n", kind, len(entries), standard, extensions)
}
