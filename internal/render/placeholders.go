package render

import "strings"

// Placeholder is one template token. The set is closed: the renderer only
// produces values for these keys, and templates may only reference them.
type Placeholder int

// Placeholders, grouped as they appear on the DANFSe.
const (
	// Banner and typography.
	CanceladaDiv Placeholder = iota
	FontFamily
	FontSize
	FontSizeHeader
	FontSizeQRCode

	// Logos.
	NFSeLogo
	PrefeituraLogo
	LogoName

	// Header.
	ValidadeJuridica
	ChaveAcesso
	QRCodeSrc
	NumeroNFSe
	NumeroDPS
	SerieDPS
	Competencia
	DataHoraEmissao
	DataHoraEmissaoDPS

	// Provider.
	PrestServ
	PrestCNPJ
	PrestIM
	PrestRazao
	PrestEndereco
	PrestMunicipio
	PrestCEP
	PrestFone
	PrestEmail
	PrestSimples
	PrestRegimeSN

	// Recipient.
	TomaCNPJ
	TomaIM
	TomaRazao
	TomaEndereco
	TomaCEP
	TomaCMun
	TomaEmail
	TomaFone

	// Intermediary.
	IntermCNPJ
	IntermRazao

	// Service.
	ServCTribNac
	ServCTribMun
	ServNBS
	ServDescHTML
	ServLocal
	ServPais

	// Municipal tax.
	ISSTributacao
	ISSPais
	ISSMunInc
	ISSRegime
	ISSOperacao
	ISSSuspensao
	ISSProcesso
	ISSBeneficio
	ISSDescIncond
	ISSDeducoes
	ISSCalculo
	ISSBC
	ISSAliq
	ISSRetencao
	ISSApurado

	// Federal tax.
	FedIRRF
	FedPIS
	FedCOFINS
	FedCSLL
	FedCP
	FedRetPisCofins
	FedTotal

	// Values.
	ValorServico
	ValorLiquido
	DescCond
	DescIncond
	ISSRetido
	FedRetidos
	PisCofinsRet

	// Approximate tax burden.
	TotFed
	TotEst
	TotMun

	// Free text.
	InfComplementares

	placeholderCount
)

type placeholderInfo struct {
	name string
	raw  bool
}

// placeholders is indexed by Placeholder. Raw values are inserted without
// HTML escaping because the renderer builds them as markup.
var placeholders = [placeholderCount]placeholderInfo{
	CanceladaDiv:       {"NFSE_CANCELADA_DIV", true},
	FontFamily:         {"FONT_FAMILY", false},
	FontSize:           {"FONT_SIZE", false},
	FontSizeHeader:     {"FONT_SIZE_HEADER", false},
	FontSizeQRCode:     {"FONT_SIZE_QRCODE", false},
	NFSeLogo:           {"NFSE_LOGO", false},
	PrefeituraLogo:     {"PREFEITURA_LOGO", false},
	LogoName:           {"LOGO_NAME", true},
	ValidadeJuridica:   {"VALIDADE_JURIDICA", false},
	ChaveAcesso:        {"CHAVE_ACESSO", false},
	QRCodeSrc:          {"QRCODE_SRC", false},
	NumeroNFSe:         {"NUMERO_NFSE", false},
	NumeroDPS:          {"NUMERO_DPS", false},
	SerieDPS:           {"SERIE_DPS", false},
	Competencia:        {"COMPETENCIA", false},
	DataHoraEmissao:    {"DATA_HORA_EMISSAO", false},
	DataHoraEmissaoDPS: {"DATA_HORA_EMISSAO_DPS", false},
	PrestServ:          {"PREST_SERV", false},
	PrestCNPJ:          {"PREST_CNPJ", false},
	PrestIM:            {"PREST_IM", false},
	PrestRazao:         {"PREST_RAZAO", false},
	PrestEndereco:      {"PREST_ENDERECO", false},
	PrestMunicipio:     {"PREST_MUNICIPIO", false},
	PrestCEP:           {"PREST_CEP", false},
	PrestFone:          {"PREST_FONE", false},
	PrestEmail:         {"PREST_EMAIL", false},
	PrestSimples:       {"PREST_SIMPLES", false},
	PrestRegimeSN:      {"PREST_REGIME_SN", false},
	TomaCNPJ:           {"TOMA_CNPJ", false},
	TomaIM:             {"TOMA_IM", false},
	TomaRazao:          {"TOMA_RAZAO", false},
	TomaEndereco:       {"TOMA_ENDERECO", false},
	TomaCEP:            {"TOMA_CEP", false},
	TomaCMun:           {"TOMA_CMUN", false},
	TomaEmail:          {"TOMA_EMAIL", false},
	TomaFone:           {"TOMA_FONE", false},
	IntermCNPJ:         {"INTERM_CNPJ", false},
	IntermRazao:        {"INTERM_RAZAO", false},
	ServCTribNac:       {"SERV_CTRIBNAC", false},
	ServCTribMun:       {"SERV_CTRIBMUN", false},
	ServNBS:            {"SERV_NBS", false},
	ServDescHTML:       {"SERV_DESC_HTML", true},
	ServLocal:          {"SERV_LOCAL", false},
	ServPais:           {"SERV_PAIS", false},
	ISSTributacao:      {"ISS_TRIBUTACAO", false},
	ISSPais:            {"ISS_PAIS", false},
	ISSMunInc:          {"ISS_MUN_INC", false},
	ISSRegime:          {"ISS_REGIME", false},
	ISSOperacao:        {"ISS_OPERACAO", false},
	ISSSuspensao:       {"ISS_SUSPENSAO", false},
	ISSProcesso:        {"ISS_PROCESSO", false},
	ISSBeneficio:       {"ISS_BENEFICIO", false},
	ISSDescIncond:      {"ISS_DESC_INCOND", false},
	ISSDeducoes:        {"ISS_DEDUCOES", false},
	ISSCalculo:         {"ISS_CALCULO", false},
	ISSBC:              {"ISS_BC", false},
	ISSAliq:            {"ISS_ALIQ", false},
	ISSRetencao:        {"ISS_RETENCAO", false},
	ISSApurado:         {"ISS_APURADO", false},
	FedIRRF:            {"FED_IRRF", false},
	FedPIS:             {"FED_PIS", false},
	FedCOFINS:          {"FED_COFINS", false},
	FedCSLL:            {"FED_CSLL", false},
	FedCP:              {"FED_CP", false},
	FedRetPisCofins:    {"FED_RET_PISCOFINS", false},
	FedTotal:           {"FED_TOTAL", false},
	ValorServico:       {"VALOR_SERVICO", false},
	ValorLiquido:       {"VALOR_LIQUIDO", false},
	DescCond:           {"DESC_COND", false},
	DescIncond:         {"DESC_INCOND", false},
	ISSRetido:          {"ISS_RETIDO", false},
	FedRetidos:         {"FED_RETIDOS", false},
	PisCofinsRet:       {"PISCOFINS_RET", false},
	TotFed:             {"TOT_FED", false},
	TotEst:             {"TOT_EST", false},
	TotMun:             {"TOT_MUN", false},
	InfComplementares:  {"INF_COMPLEMENTARES", true},
}

var placeholdersByName = func() map[string]Placeholder {
	m := make(map[string]Placeholder, placeholderCount)
	for p := Placeholder(0); p < placeholderCount; p++ {
		m[placeholders[p].name] = p
	}
	return m
}()

// Name returns the bare token name, e.g. "CHAVE_ACESSO".
func (p Placeholder) Name() string {
	if p < 0 || p >= placeholderCount {
		return ""
	}
	return placeholders[p].name
}

// Token returns the token as written in templates, e.g. "{{CHAVE_ACESSO}}".
func (p Placeholder) Token() string {
	return "{{" + p.Name() + "}}"
}

// Raw reports whether values for p are inserted without HTML escaping.
func (p Placeholder) Raw() bool {
	if p < 0 || p >= placeholderCount {
		return false
	}
	return placeholders[p].raw
}

func (p Placeholder) String() string {
	return p.Name()
}

// AllPlaceholders returns every placeholder in declaration order.
func AllPlaceholders() []Placeholder {
	out := make([]Placeholder, placeholderCount)
	for p := range out {
		out[p] = Placeholder(p)
	}
	return out
}

// LookupPlaceholder resolves a bare token name. Names are case-sensitive.
func LookupPlaceholder(name string) (Placeholder, bool) {
	p, ok := placeholdersByName[strings.TrimSpace(name)]
	return p, ok
}

// Values maps placeholders to their rendered text for one document.
type Values map[Placeholder]string
