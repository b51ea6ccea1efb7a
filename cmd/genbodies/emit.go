package main

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
)

// catalogEntry names a NAIF id the emitted tables cover. Kernel bodies
// without an entry here are skipped.
type catalogEntry struct {
	id        int32
	constName string
	name      string
	aliases   []string
}

var catalogEntries = []catalogEntry{
	{0, "SolarSystemBarycenter", "Solar System Barycenter", []string{"ssb"}},
	{1, "MercuryBarycenter", "Mercury Barycenter", nil},
	{2, "VenusBarycenter", "Venus Barycenter", nil},
	{3, "EarthMoonBarycenter", "Earth-Moon Barycenter", []string{"emb"}},
	{4, "MarsBarycenter", "Mars Barycenter", nil},
	{5, "JupiterBarycenter", "Jupiter Barycenter", nil},
	{6, "SaturnBarycenter", "Saturn Barycenter", nil},
	{7, "UranusBarycenter", "Uranus Barycenter", nil},
	{8, "NeptuneBarycenter", "Neptune Barycenter", nil},
	{9, "PlutoBarycenter", "Pluto Barycenter", nil},
	{10, "Sun", "Sun", nil},
	{199, "Mercury", "Mercury", nil},
	{299, "Venus", "Venus", nil},
	{301, "Moon", "Moon", []string{"luna"}},
	{399, "Earth", "Earth", nil},
	{401, "Phobos", "Phobos", nil},
	{402, "Deimos", "Deimos", nil},
	{499, "Mars", "Mars", nil},
	{501, "Io", "Io", nil},
	{502, "Europa", "Europa", nil},
	{503, "Ganymede", "Ganymede", nil},
	{504, "Callisto", "Callisto", nil},
	{505, "Amalthea", "Amalthea", nil},
	{514, "Thebe", "Thebe", nil},
	{515, "Adrastea", "Adrastea", nil},
	{516, "Metis", "Metis", nil},
	{599, "Jupiter", "Jupiter", nil},
	{601, "Mimas", "Mimas", nil},
	{602, "Enceladus", "Enceladus", nil},
	{603, "Tethys", "Tethys", nil},
	{604, "Dione", "Dione", nil},
	{605, "Rhea", "Rhea", nil},
	{606, "Titan", "Titan", nil},
	{607, "Hyperion", "Hyperion", nil},
	{608, "Iapetus", "Iapetus", nil},
	{609, "Phoebe", "Phoebe", nil},
	{610, "Janus", "Janus", nil},
	{611, "Epimetheus", "Epimetheus", nil},
	{612, "Helene", "Helene", nil},
	{613, "Telesto", "Telesto", nil},
	{614, "Calypso", "Calypso", nil},
	{615, "Atlas", "Atlas", nil},
	{616, "Prometheus", "Prometheus", nil},
	{617, "Pandora", "Pandora", nil},
	{618, "Pan", "Pan", nil},
	{699, "Saturn", "Saturn", nil},
	{701, "Ariel", "Ariel", nil},
	{702, "Umbriel", "Umbriel", nil},
	{703, "Titania", "Titania", nil},
	{704, "Oberon", "Oberon", nil},
	{705, "Miranda", "Miranda", nil},
	{706, "Cordelia", "Cordelia", nil},
	{707, "Ophelia", "Ophelia", nil},
	{708, "Bianca", "Bianca", nil},
	{709, "Cressida", "Cressida", nil},
	{710, "Desdemona", "Desdemona", nil},
	{711, "Juliet", "Juliet", nil},
	{712, "Portia", "Portia", nil},
	{713, "Rosalind", "Rosalind", nil},
	{714, "Belinda", "Belinda", nil},
	{715, "Puck", "Puck", nil},
	{799, "Uranus", "Uranus", nil},
	{801, "Triton", "Triton", nil},
	{802, "Nereid", "Nereid", nil},
	{803, "Naiad", "Naiad", nil},
	{804, "Thalassa", "Thalassa", nil},
	{805, "Despina", "Despina", nil},
	{806, "Galatea", "Galatea", nil},
	{807, "Larissa", "Larissa", nil},
	{808, "Proteus", "Proteus", nil},
	{899, "Neptune", "Neptune", nil},
	{901, "Charon", "Charon", nil},
	{902, "Nix", "Nix", nil},
	{903, "Hydra", "Hydra", nil},
	{904, "Kerberos", "Kerberos", nil},
	{905, "Styx", "Styx", nil},
	{999, "Pluto", "Pluto", nil},
	{2000001, "Ceres", "Ceres", nil},
	{2000004, "Vesta", "Vesta", nil},
	{2000433, "Eros", "Eros", nil},
	{2004015, "WilsonHarrington", "Wilson-Harrington", []string{"wilson"}},
	{2101955, "Bennu", "Bennu", nil},
}

type trig struct {
	amp    float64
	theta0 float64
	theta1 float64
}

type rotSpec struct {
	ra, dec, pm                [3]float64
	raTerms, decTerms, pmTerms []trig
}

type record struct {
	entry catalogEntry
	gm    *float64
	radii *[3]float64
	rot   *rotSpec
}

// buildRecords assembles the catalog from the parsed kernel variables.
func buildRecords(gmVars, pckVars map[string][]float64, logger *slog.Logger) []record {
	records := make([]record, 0, len(catalogEntries))
	for _, entry := range catalogEntries {
		rec := record{entry: entry}

		if gm, ok := gmVars[fmt.Sprintf("BODY%d_GM", entry.id)]; ok && len(gm) == 1 {
			rec.gm = &gm[0]
		}
		if radii, ok := pckVars[fmt.Sprintf("BODY%d_RADII", entry.id)]; ok {
			if len(radii) != 3 {
				logger.Warn("skipping radii with wrong arity", "body", entry.name, "len", len(radii))
			} else {
				rec.radii = &[3]float64{radii[0], radii[1], radii[2]}
			}
		}
		rec.rot = buildRotation(entry, pckVars, logger)
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].entry.id < records[j].entry.id })
	return records
}

// buildRotation assembles a rotational-element model. The trigonometric
// series pair per-body amplitudes with the planetary-system
// nutation-precession angles keyed by the barycenter id.
func buildRotation(entry catalogEntry, pckVars map[string][]float64, logger *slog.Logger) *rotSpec {
	ra, okRA := pckVars[fmt.Sprintf("BODY%d_POLE_RA", entry.id)]
	dec, okDec := pckVars[fmt.Sprintf("BODY%d_POLE_DEC", entry.id)]
	pm, okPM := pckVars[fmt.Sprintf("BODY%d_PM", entry.id)]
	if !okRA || !okDec || !okPM {
		if okRA || okDec || okPM {
			logger.Warn("skipping incomplete rotation model", "body", entry.name)
		}
		return nil
	}

	spec := &rotSpec{ra: pad3(ra), dec: pad3(dec), pm: pad3(pm)}

	system := entry.id / 100
	if entry.id >= 2000000 || system < 1 || system > 9 {
		return spec
	}
	angles := pckVars[fmt.Sprintf("BODY%d_NUT_PREC_ANGLES", system)]
	if len(angles)%2 != 0 {
		logger.Warn("skipping odd-length nutation-precession angles", "system", system)
		return spec
	}

	attach := func(key string) []trig {
		amps := pckVars[fmt.Sprintf("BODY%d_%s", entry.id, key)]
		if len(amps) == 0 {
			return nil
		}
		if 2*len(amps) > len(angles) {
			logger.Warn("more amplitudes than angles", "body", entry.name, "key", key)
			return nil
		}
		terms := make([]trig, 0, len(amps))
		for i, amp := range amps {
			if amp == 0 {
				continue
			}
			terms = append(terms, trig{amp: amp, theta0: angles[2*i], theta1: angles[2*i+1]})
		}
		return terms
	}
	spec.raTerms = attach("NUT_PREC_RA")
	spec.decTerms = attach("NUT_PREC_DEC")
	spec.pmTerms = attach("NUT_PREC_PM")
	return spec
}

func pad3(v []float64) [3]float64 {
	var out [3]float64
	for i := 0; i < len(v) && i < 3; i++ {
		out[i] = v[i]
	}
	return out
}

// emit renders the records as the bodies package table file.
func emit(records []record, gmKernel, pckKernel string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by genbodies from %s and %s. DO NOT EDIT.\n\n", gmKernel, pckKernel)
	b.WriteString("package bodies\n\n")

	b.WriteString("// Named catalog origins.\nconst (\n")
	for _, rec := range records {
		fmt.Fprintf(&b, "\t%s Origin = %d\n", rec.entry.constName, rec.entry.id)
	}
	b.WriteString(")\n\n")

	b.WriteString(`type bodyRecord struct {
	id         int32
	name       string
	aliases    []string
	gm         float64
	hasGM      bool
	meanRadius float64
	radii      [3]float64
	hasRadii   bool
	rot        *rotModel
}

`)

	b.WriteString("var catalog = map[Origin]*bodyRecord{\n")
	for _, rec := range records {
		emitRecord(&b, rec)
	}
	b.WriteString("}\n\n")

	b.WriteString(`var (
	nameIndex  map[string]Origin
	allOrigins []Origin
)

func init() {
	nameIndex = make(map[string]Origin, 2*len(catalog))
	allOrigins = make([]Origin, 0, len(catalog))
	for origin, rec := range catalog {
		allOrigins = append(allOrigins, origin)
		nameIndex[normalizeName(rec.name)] = origin
		for _, alias := range rec.aliases {
			nameIndex[normalizeName(alias)] = origin
		}
	}
	for i := 1; i < len(allOrigins); i++ {
		for j := i; j > 0 && allOrigins[j] < allOrigins[j-1]; j-- {
			allOrigins[j], allOrigins[j-1] = allOrigins[j-1], allOrigins[j]
		}
	}
}
`)
	return b.String()
}

func emitRecord(b *strings.Builder, rec record) {
	fmt.Fprintf(b, "\t%s: {\n", rec.entry.constName)
	fmt.Fprintf(b, "\t\tid: %d, name: %q,", rec.entry.id, rec.entry.name)
	if len(rec.entry.aliases) > 0 {
		b.WriteString(" aliases: []string{")
		for i, alias := range rec.entry.aliases {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%q", alias)
		}
		b.WriteString("},")
	}
	b.WriteString("\n")
	if rec.gm != nil {
		fmt.Fprintf(b, "\t\tgm: %s, hasGM: true,\n", formatFloat(*rec.gm))
	}
	if rec.radii != nil {
		mean := (rec.radii[0] + rec.radii[1] + rec.radii[2]) / 3
		fmt.Fprintf(b, "\t\tmeanRadius: %s, radii: %s, hasRadii: true,\n",
			formatFloat(mean), formatVec(*rec.radii))
	}
	if rec.rot != nil {
		b.WriteString("\t\trot: &rotModel{\n")
		fmt.Fprintf(b, "\t\t\tra:  %s,\n", formatVec(rec.rot.ra))
		fmt.Fprintf(b, "\t\t\tdec: %s,\n", formatVec(rec.rot.dec))
		fmt.Fprintf(b, "\t\t\tpm:  %s,\n", formatVec(rec.rot.pm))
		emitTerms(b, "raTerms", rec.rot.raTerms)
		emitTerms(b, "decTerms", rec.rot.decTerms)
		emitTerms(b, "pmTerms", rec.rot.pmTerms)
		b.WriteString("\t\t},\n")
	}
	b.WriteString("\t},\n")
}

func emitTerms(b *strings.Builder, field string, terms []trig) {
	if len(terms) == 0 {
		return
	}
	fmt.Fprintf(b, "\t\t\t%s: []trigTerm{\n", field)
	for _, t := range terms {
		fmt.Fprintf(b, "\t\t\t\t{amp: %s, theta0: %s, theta1: %s},\n",
			formatFloat(t.amp), formatFloat(t.theta0), formatFloat(t.theta1))
	}
	b.WriteString("\t\t\t},\n")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatVec(v [3]float64) string {
	// Trailing zero coefficients are dropped; the evaluator zero-fills.
	n := 3
	for n > 0 && v[n-1] == 0 {
		n--
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = formatFloat(v[i])
	}
	return "[3]float64{" + strings.Join(parts, ", ") + "}"
}
