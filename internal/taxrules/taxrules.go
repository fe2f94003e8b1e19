// =============================================================================
// NFSe DANFSe Renderer - Tax Rule Tables
// =============================================================================
//
// This module maps the small integer codes of the NFSe schema to the
// descriptions printed on the DANFSe. Each table is an immutable, ordered list
// of code -> description entries with an explicit default for absent or
// unmapped codes.
//
// TABLES:
//   - ISSRetention                 : tribMun.tpRetISSQN
//   - PisCofinsRetention           : tribFed.piscofins.tpRetPisCofins
//   - TaxationNature               : tribMun.tribISSQN (default is empty)
//   - IssuerRole                   : infDPS.tpEmit
//   - SimplesNacionalStatus        : prest.regTrib.opSimpNac
//   - SimplesNacionalApportionment : prest.regTrib.regApTribSN
//   - SpecialRegime                : prest.regTrib.regEspTrib
//   - ImmunityType                 : tribMun.tpImunidade
//   - SuspensionType               : tribMun.exigSusp.tpSusp
//
// =============================================================================

package taxrules

// Entry is a single code -> description row.
type Entry struct {
	Code        int
	Description string
}

// Table is an immutable lookup table with a default description.
type Table struct {
	name     string
	entries  []Entry
	fallback string
}

func newTable(name, fallback string, entries ...Entry) Table {
	return Table{name: name, entries: entries, fallback: fallback}
}

// Name returns the schema field the table decodes.
func (t Table) Name() string {
	return t.name
}

// Default returns the description used for absent or unmapped codes.
func (t Table) Default() string {
	return t.fallback
}

// Entries returns a copy of the table rows in declaration order.
func (t Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Describe returns the description for code, or the default when code is nil
// or not mapped.
func (t Table) Describe(code *int) string {
	if code == nil {
		return t.fallback
	}
	return t.Lookup(*code)
}

// Lookup returns the description for code, or the default.
func (t Table) Lookup(code int) string {
	for _, e := range t.entries {
		if e.Code == code {
			return e.Description
		}
	}
	return t.fallback
}

// =============================================================================
// MUNICIPAL TAX (ISSQN)
// =============================================================================

// ISSRetention decodes the ISSQN retention type.
var ISSRetention = newTable("tpRetISSQN", "-",
	Entry{1, "Não Retido"},
	Entry{2, "Retido pelo Tomador"},
	Entry{3, "Retido pelo Intermediario"},
)

// TaxationNature decodes the ISSQN taxation nature. Unmapped codes print
// nothing rather than a dash.
var TaxationNature = newTable("tribISSQN", "",
	Entry{1, "Operação Tributável"},
	Entry{2, "Imunidade"},
	Entry{3, "Exportação de serviço"},
	Entry{4, "Não Incidência"},
)

// ImmunityType decodes the constitutional immunity clause (CF88, Art. 150, VI).
var ImmunityType = newTable("tpImunidade", "-",
	Entry{0, "Nenhum"},
	Entry{1, "Patrimônio, renda ou serviços, uns dos outros"},
	Entry{2, "Entidades religiosas e templos de qualquer culto"},
	Entry{3, "Patrimônio, renda ou serviços dos partidos políticos"},
	Entry{4, "Livros, jornais, periódicos e o papel destinado a sua impressão"},
	Entry{5, "Fonogramas e videofonogramas musicais produzidos no Brasil"},
)

// SuspensionType decodes the ISSQN enforceability suspension.
var SuspensionType = newTable("tpSusp", "-",
	Entry{0, "Não"},
	Entry{1, "Suspensa por Decisão Judicial"},
	Entry{2, "Suspensa por Processo Administrativo"},
)

// =============================================================================
// FEDERAL TAXES
// =============================================================================

// PisCofinsRetention decodes how PIS and COFINS were retained.
var PisCofinsRetention = newTable("tpRetPisCofins", "-",
	Entry{1, "PIS/COFINS Retido"},
	Entry{2, "PIS/COFINS Não Retido"},
	Entry{3, "PIS Retido/COFINS Não Retido"},
	Entry{4, "PIS Não Retido/COFINS Retido"},
)

// =============================================================================
// ISSUER AND TAX REGIME
// =============================================================================

// IssuerRole decodes who issued the declaration.
var IssuerRole = newTable("tpEmit", "-",
	Entry{1, "Prestador do Serviço"},
	Entry{2, "Tomador do Serviço"},
	Entry{3, "Intermediário"},
)

// SimplesNacionalStatus decodes the provider's Simples Nacional option.
var SimplesNacionalStatus = newTable("opSimpNac", "-",
	Entry{1, "Não Optante"},
	Entry{2, "Optante - Microempreendedor Individual(MEI)"},
	Entry{3, "Optante - Microempresa ou Empresa de Pequeno Porte (ME/EPP)"},
)

// SimplesNacionalApportionment decodes the apportionment regime chosen by a
// ME/EPP provider that exceeded a Simples Nacional sublimit.
var SimplesNacionalApportionment = newTable("regApTribSN", "-",
	Entry{1, "Regime de apuração dos tributos federais e municipal pelo Simples Nacional"},
	Entry{2, "Regime de apuração dos tributos federais pelo SN e ISSQN  por fora do SN conforme respectiva legislação municipal do tributo"},
	Entry{3, "Regime de apuração dos tributos federais e municipal por fora do SN conforme respectivas legilações federal e municipal de cada tributo"},
)

// SpecialRegime decodes the special municipal taxation regime.
var SpecialRegime = newTable("regEspTrib", "-",
	Entry{0, "Nenhum"},
	Entry{1, "Ato Cooperado (Cooperativa)"},
	Entry{2, "Estimativa"},
	Entry{3, "Microempresa Municipal"},
	Entry{4, "Notário ou Registrador"},
	Entry{5, "Profissional Autônomo"},
	Entry{6, "Sociedade de Profissionais"},
)

// All lists every table, for diagnostics and exhaustive tests.
func All() []Table {
	return []Table{
		ISSRetention,
		PisCofinsRetention,
		TaxationNature,
		IssuerRole,
		SimplesNacionalStatus,
		SimplesNacionalApportionment,
		SpecialRegime,
		ImmunityType,
		SuspensionType,
	}
}
