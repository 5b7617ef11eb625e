package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/fontsys"
	"github.com/npillmayer/fontsys/facedb"
	"github.com/npillmayer/fontsys/scaler"
	"github.com/pterm/pterm"
)

func listOp(intp *Intp, op *Op) (error, bool) {
	rows := pterm.TableData{
		{"ID", "Family", "Style", "Weight", "Stretch", "Mono"},
	}
	intp.sys.EachFace(func(face *facedb.FaceInfo) {
		family := face.PostScriptName
		if len(face.Families) > 0 {
			family = face.Families[0]
		}
		mono := ""
		if face.Monospaced {
			mono = "yes"
		}
		rows = append(rows, []string{
			strconv.Itoa(int(face.ID)),
			family,
			face.Style.String(),
			strconv.Itoa(int(face.Weight)),
			strconv.Itoa(int(face.Stretch)),
			mono,
		})
	})
	if len(rows) == 1 {
		pterm.Println("no font faces loaded")
		return nil, false
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	return nil, false
}

func loadOp(intp *Intp, op *Op) (error, bool) {
	if len(op.args) != 1 {
		return errors.New("usage: load <path>"), false
	}
	if err := intp.sys.LoadFontFile(op.args[0]); err != nil {
		return err, false
	}
	pterm.Printf("loaded %s\n", op.args[0])
	return nil, false
}

func dirOp(intp *Intp, op *Op) (error, bool) {
	if len(op.args) != 1 {
		return errors.New("usage: dir <path>"), false
	}
	intp.sys.LoadFontsDir(op.args[0])
	return nil, false
}

func queryOp(intp *Intp, op *Op) (error, bool) {
	if len(op.args) == 0 {
		return errors.New("usage: query <families> [attr...]"), false
	}
	families := parseFamilies(op.args[0])
	attrs, err := parseAttrs(op.args[1:])
	if err != nil {
		return err, false
	}
	id, ok := intp.sys.Query(families, attrs)
	if !ok {
		pterm.Println("no matching face")
		return nil, false
	}
	pterm.Printf("face %d = %s\n", id, intp.sys.FaceName(id))
	return nil, false
}

func monoOp(intp *Intp, op *Op) (error, bool) {
	attrs, err := parseAttrs(op.args)
	if err != nil {
		return err, false
	}
	id, ok := intp.sys.QueryMonospace(attrs)
	if !ok {
		pterm.Println("no matching monospaced face")
		return nil, false
	}
	pterm.Printf("face %d = %s\n", id, intp.sys.FaceName(id))
	return nil, false
}

func nameOp(intp *Intp, op *Op) (error, bool) {
	id, err := parseFaceID(op.args, 0)
	if err != nil {
		return err, false
	}
	pterm.Printf("face %d = %s\n", id, intp.sys.FaceName(id))
	return nil, false
}

func localeOp(intp *Intp, op *Op) (error, bool) {
	pterm.Printf("locale = %s\n", intp.sys.Locale())
	return nil, false
}

func outlineOp(intp *Intp, op *Op) (error, bool) {
	key, err := intp.glyphKey(op.args)
	if err != nil {
		return err, false
	}
	cmds := intp.glyphs.GetOutlineCommands(key)
	if len(cmds) == 0 {
		pterm.Println("glyph has no outline")
		return nil, false
	}
	for _, cmd := range cmds {
		switch cmd.Op {
		case scaler.SegmentOpMoveTo:
			pterm.Printf("moveto  (%.2f, %.2f)\n", cmd.Args[0].X, cmd.Args[0].Y)
		case scaler.SegmentOpLineTo:
			pterm.Printf("lineto  (%.2f, %.2f)\n", cmd.Args[0].X, cmd.Args[0].Y)
		case scaler.SegmentOpQuadTo:
			pterm.Printf("quadto  (%.2f, %.2f) (%.2f, %.2f)\n",
				cmd.Args[0].X, cmd.Args[0].Y, cmd.Args[1].X, cmd.Args[1].Y)
		case scaler.SegmentOpCubeTo:
			pterm.Printf("cubeto  (%.2f, %.2f) (%.2f, %.2f) (%.2f, %.2f)\n",
				cmd.Args[0].X, cmd.Args[0].Y, cmd.Args[1].X, cmd.Args[1].Y,
				cmd.Args[2].X, cmd.Args[2].Y)
		}
	}
	return nil, false
}

func renderOp(intp *Intp, op *Op) (error, bool) {
	if len(op.args) != 4 {
		return errors.New("usage: render <id> <char> <size> <out.png>"), false
	}
	key, err := intp.glyphKey(op.args[:3])
	if err != nil {
		return err, false
	}
	img := intp.glyphs.GetImage(key)
	if img == nil {
		return errors.New("glyph has no renderable content"), false
	}
	if err := writeImagePNG(img, op.args[3]); err != nil {
		return err, false
	}
	pterm.Printf("wrote %s (%dx%d)\n", op.args[3], img.Placement.Width, img.Placement.Height)
	return nil, false
}

// glyphKey builds a cache key from command arguments <id> <char> <size>.
func (intp *Intp) glyphKey(args []string) (fontsys.CacheKey, error) {
	var key fontsys.CacheKey
	if len(args) != 3 {
		return key, errors.New("expected arguments: <id> <char> <size>")
	}
	id, err := parseFaceID(args, 0)
	if err != nil {
		return key, err
	}
	r, n := utf8.DecodeRuneInString(args[1])
	if r == utf8.RuneError || n != len(args[1]) {
		return key, fmt.Errorf("not a single character: %q", args[1])
	}
	size, err := strconv.ParseFloat(args[2], 64)
	if err != nil || size <= 0 {
		return key, fmt.Errorf("not a usable font size: %q", args[2])
	}
	font := intp.sys.GetFont(id)
	if font == nil {
		return key, fmt.Errorf("face %d is not usable", id)
	}
	gid := font.GlyphIndex(r)
	if gid == 0 {
		return key, fmt.Errorf("face %d has no glyph for %q", id, r)
	}
	key, _, _ = fontsys.NewCacheKey(id, gid, size, 0, 0, 0)
	return key, nil
}

func parseFaceID(args []string, inx int) (facedb.FaceID, error) {
	if len(args) <= inx {
		return 0, errors.New("missing face ID argument")
	}
	n, err := strconv.ParseUint(args[inx], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("not a face ID: %q", args[inx])
	}
	return facedb.FaceID(n), nil
}

// parseFamilies splits a comma-separated family list, mapping generic CSS
// names to their classes.
func parseFamilies(arg string) []fontsys.Family {
	var families []fontsys.Family
	for _, name := range strings.Split(arg, ",") {
		name = strings.TrimSpace(name)
		switch strings.ToLower(name) {
		case "":
			continue
		case "serif":
			families = append(families, facedb.Serif)
		case "sans-serif", "sans":
			families = append(families, facedb.SansSerif)
		case "monospace", "mono":
			families = append(families, facedb.Monospace)
		case "cursive":
			families = append(families, facedb.Cursive)
		case "fantasy":
			families = append(families, facedb.Fantasy)
		default:
			families = append(families, facedb.FamilyName(name))
		}
	}
	return families
}

func parseAttrs(args []string) (fontsys.Attrs, error) {
	attrs := fontsys.DefaultAttrs()
	for _, arg := range args {
		switch strings.ToLower(arg) {
		case "italic":
			attrs.Style = facedb.StyleItalic
		case "oblique":
			attrs.Style = facedb.StyleOblique
		case "thin":
			attrs.Weight = facedb.WeightThin
		case "light":
			attrs.Weight = facedb.WeightLight
		case "medium":
			attrs.Weight = facedb.WeightMedium
		case "semibold":
			attrs.Weight = facedb.WeightSemiBold
		case "bold":
			attrs.Weight = facedb.WeightBold
		case "black":
			attrs.Weight = facedb.WeightBlack
		case "condensed":
			attrs.Stretch = facedb.StretchCondensed
		case "expanded":
			attrs.Stretch = facedb.StretchExpanded
		case "monospaced":
			attrs.Monospaced = true
		default:
			return attrs, fmt.Errorf("unknown style attribute: %q", arg)
		}
	}
	return attrs, nil
}

// writeImagePNG converts a rasterized glyph image to a black-on-white PNG
// file. Mask coverage modulates the ink's alpha over the white background;
// color images are copied as they are.
func writeImagePNG(img *scaler.Image, outPath string) error {
	w, h := img.Placement.Width, img.Placement.Height
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.RGBA{255, 255, 255, 255}), image.Point{}, draw.Src)

	switch img.Content {
	case scaler.ContentMask:
		mask := &image.Alpha{Pix: img.Data, Stride: w, Rect: image.Rect(0, 0, w, h)}
		draw.DrawMask(dst, dst.Bounds(), image.Black, image.Point{}, mask, image.Point{}, draw.Over)
	case scaler.ContentColor:
		src := &image.RGBA{Pix: img.Data, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
		draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Over)
	default:
		return errors.New("image content cannot be written as PNG")
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, dst); err != nil {
		return fmt.Errorf("cannot encode png: %w", err)
	}
	return nil
}
