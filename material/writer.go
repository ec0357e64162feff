package material

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
)

// Encode writes a Material to writer. Output is deterministic: slots are
// emitted in a fixed order and empty optional slots are skipped.
func Encode(w io.Writer, m *Material, opt *FormatOptions) error {
	fopt := opt.normalize()
	// Buffered writer reduces syscall overhead and short writes.
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw, indent: fopt.Indent}
	if err := wr.writeMaterial(m); err != nil {
		return err
	}

	return bw.Flush()
}

// EncodeFile writes a Material to a file.
func EncodeFile(path string, m *Material, opt *FormatOptions) error {
	b, err := Format(m, opt)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o600)
}

// Format renders a Material to bytes.
func Format(m *Material, opt *FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, m, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// writer writes a Material to a writer.
type writer struct {
	w      io.Writer // Writer to write to
	indent string    // Indentation string
}

// writeMaterial writes the material block.
func (w *writer) writeMaterial(m *Material) error {
	writePath := func(name, path string) error {
		if path == "" {
			return nil
		}
		return w.writeLine(name + " = " + strconv.Quote(path) + ";")
	}
	writeScalar := func(name string, v float64) error {
		return w.writeLine(name + " = " + strconv.FormatFloat(v, 'g', -1, 64) + ";")
	}

	if err := w.writeString("material {\n"); err != nil {
		return err
	}

	if err := writePath("shader", m.Shader); err != nil {
		return err
	}
	if err := writePath("baseColor", m.BaseColor); err != nil {
		return err
	}
	if err := writePath("maskMap", m.MaskMap); err != nil {
		return err
	}
	if err := writePath("occlusion", m.Occlusion); err != nil {
		return err
	}
	if err := writeScalar("occlusionStrength", m.OcclusionStrength); err != nil {
		return err
	}
	if err := writePath("normal", m.Normal); err != nil {
		return err
	}
	if m.Normal != "" {
		flag := "0"
		if m.NormalMap {
			flag = "1"
		}
		if err := w.writeLine("normalMap = " + flag + ";"); err != nil {
			return err
		}
	}
	if err := writePath("height", m.Height); err != nil {
		return err
	}
	if m.Height != "" {
		if err := writeScalar("heightStrength", m.HeightStrength); err != nil {
			return err
		}
	}
	if err := writePath("emission", m.Emission); err != nil {
		return err
	}
	if m.Emission != "" {
		if err := writeScalar("emissionIntensity", m.EmissionIntensity); err != nil {
			return err
		}
	}

	return w.writeString("}\n")
}

// writeLine writes one indented slot line.
func (w *writer) writeLine(s string) error {
	if err := w.writeString(w.indent); err != nil {
		return err
	}
	if err := w.writeString(s); err != nil {
		return err
	}
	return w.writeString("\n")
}

// writeString writes a raw string.
func (w *writer) writeString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}
