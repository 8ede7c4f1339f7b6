// Package sequence parses plasmid reference sequence files and writes the
// normalized FASTA copies stored alongside each submission.
package sequence

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mingzhi/biogo/seq"
)

// Record is the slice of a sequence file the service keeps: the record
// identifier (used as the sample's reference sequence description) and the
// raw residues.
type Record struct {
	ID  string
	Seq []byte
}

var ErrUnknownFormat = errors.New("unknown sequence file format")

// Parse detects the format of data by content and extracts the first record.
// FASTA, EMBL and GenBank flat files are supported.
func Parse(data []byte) (*Record, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	switch {
	case bytes.HasPrefix(trimmed, []byte(">")):
		return parseFasta(trimmed)
	case bytes.HasPrefix(trimmed, []byte("ID ")):
		return parseEMBL(trimmed)
	case bytes.HasPrefix(trimmed, []byte("LOCUS")):
		return parseGenBank(trimmed)
	}
	return nil, ErrUnknownFormat
}

func parseFasta(data []byte) (*Record, error) {
	rd := seq.NewFastaReader(bytes.NewReader(data))
	seqs, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parseFasta: %w", err)
	}
	if len(seqs) == 0 || len(seqs[0].Seq) == 0 {
		return nil, errors.New("parseFasta: empty record")
	}
	id := seqs[0].Id
	if fields := strings.Fields(id); len(fields) > 0 {
		id = fields[0]
	}
	if id == "" {
		return nil, errors.New("parseFasta: missing record id")
	}
	return &Record{ID: id, Seq: seqs[0].Seq}, nil
}

// parseEMBL reads the accession from the ID line ("ID   X56734; SV 1; ...")
// and the residues between SQ and //. The record ID is accession.version,
// matching the VERSION-style identifiers used elsewhere.
func parseEMBL(data []byte) (*Record, error) {
	var id, sv string
	var residues []byte
	inSeq := false

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "ID"):
			fields := strings.Split(strings.TrimSpace(line[2:]), ";")
			if len(fields) > 0 {
				id = strings.TrimSpace(fields[0])
			}
			for _, f := range fields[1:] {
				f = strings.TrimSpace(f)
				if strings.HasPrefix(f, "SV ") {
					sv = strings.TrimSpace(f[3:])
				}
			}
		case strings.HasPrefix(line, "SQ"):
			inSeq = true
		case strings.HasPrefix(line, "//"):
			inSeq = false
		case inSeq:
			residues = append(residues, extractResidues(line)...)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parseEMBL: %w", err)
	}
	if id == "" || len(residues) == 0 {
		return nil, errors.New("parseEMBL: incomplete record")
	}
	if sv != "" {
		id = id + "." + sv
	}
	return &Record{ID: id, Seq: residues}, nil
}

// parseGenBank reads the versioned accession from the VERSION line (falling
// back to ACCESSION) and the residues from the ORIGIN section.
func parseGenBank(data []byte) (*Record, error) {
	var id string
	var residues []byte
	inSeq := false

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "VERSION"):
			if fields := strings.Fields(line); len(fields) > 1 {
				id = fields[1]
			}
		case strings.HasPrefix(line, "ACCESSION"):
			if id == "" {
				if fields := strings.Fields(line); len(fields) > 1 {
					id = fields[1]
				}
			}
		case strings.HasPrefix(line, "ORIGIN"):
			inSeq = true
		case strings.HasPrefix(line, "//"):
			inSeq = false
		case inSeq:
			residues = append(residues, extractResidues(line)...)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parseGenBank: %w", err)
	}
	if id == "" || len(residues) == 0 {
		return nil, errors.New("parseGenBank: incomplete record")
	}
	return &Record{ID: id, Seq: residues}, nil
}

// extractResidues drops the position numbers and whitespace flat files mix
// into sequence lines.
func extractResidues(line string) []byte {
	var out []byte
	for _, r := range line {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || r == '*' || r == '-' {
			out = append(out, byte(r))
		}
	}
	return out
}

const fastaLineWidth = 60

// WriteFasta writes rec as a normalized FASTA file, creating parent
// directories as needed.
func WriteFasta(path string, rec *Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, ">%s\n", rec.ID)
	for i := 0; i < len(rec.Seq); i += fastaLineWidth {
		end := i + fastaLineWidth
		if end > len(rec.Seq) {
			end = len(rec.Seq)
		}
		w.Write(rec.Seq[i:end])
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
