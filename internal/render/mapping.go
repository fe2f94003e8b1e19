package render

import (
	"strings"
	"time"

	"github.com/direction/nfse-danfe/internal/diagnostics"
	"github.com/direction/nfse-danfe/internal/fallback"
	"github.com/direction/nfse-danfe/internal/format"
	"github.com/direction/nfse-danfe/internal/nfse"
	"github.com/direction/nfse-danfe/internal/taxrules"
	"github.com/shopspring/decimal"
)

// Longest tax classification text printed on the form.
const taxDescriptionLimit = 80

// mapValues fills one value per placeholder. Warnings are emitted in the
// order the sections appear on the DANFSe.
func (run *renderRun) mapValues() error {
	inf, infDPS, d, w := run.inf, run.infDPS, &run.d, run.w
	opts := run.r.opts

	emit := inf.GetEmit()
	prest := infDPS.GetPrest()
	toma := infDPS.GetToma()
	interm := infDPS.GetInterm()
	serv := infDPS.GetServ()
	valores := infDPS.GetValores()
	tribMun := valores.GetTrib().GetTribMun()
	tribFed := valores.GetTrib().GetTribFed()
	pTot := valores.GetTrib().GetTotTrib().GetPTotTrib()

	v := make(Values, placeholderCount)

	// Banner, typography, logos.
	v[CanceladaDiv] = d.cancelledBanner
	v[FontFamily] = opts.FontFamily
	v[FontSize] = opts.FontSize
	v[FontSizeHeader] = opts.FontSizeHeader
	v[FontSizeQRCode] = opts.FontSizeQRCode
	v[NFSeLogo] = run.r.nfseLogo
	v[PrefeituraLogo] = TransparentPixel
	logoName := ""
	if m := d.provisionMunicipio; m != nil {
		v[PrefeituraLogo] = run.r.municipioLogo(m.LogoPath)
		logoName = m.LogoName
	}
	v[LogoName] = fallback.OrDash(format.HTMLEscape(logoName), w, "LogoName", "municipio.LogoName")

	// Header.
	v[ValidadeJuridica] = d.validity
	v[ChaveAcesso] = fallback.Or(d.accessKey, "", w, "chaveAcesso", "infNFSe.Id")
	v[QRCodeSrc] = d.qrSrc
	v[NumeroNFSe] = fallback.OrDash(nfse.Str(inf.GetNNFSe()), w, "nNFSe", "infNFSe.nNFSe")
	v[NumeroDPS] = fallback.OrDash(nfse.Str(infDPS.GetNDPS()), w, "nDPS", "infNFSe.DPS.infDPS.nDPS")
	v[SerieDPS] = fallback.OrDash(nfse.Str(infDPS.GetSerie()), w, "serie", "infNFSe.DPS.infDPS.serie")
	v[Competencia] = dateValue(infDPS.GetDCompet(), format.Date, w, "dCompet", "infNFSe.DPS.infDPS.dCompet")
	v[DataHoraEmissao] = dateValue(inf.GetDhProc(), format.DateTime, w, "dhProc", "infNFSe.dhProc")
	v[DataHoraEmissaoDPS] = dateValue(infDPS.GetDhEmi(), format.DateTime, w, "dhEmi", "infNFSe.DPS.infDPS.dhEmi")

	// Provider.
	enderNac := emit.GetEnderNac()
	v[PrestServ] = taxrules.IssuerRole.Describe(infDPS.GetTpEmit())
	v[PrestCNPJ] = run.partyID(prest.GetCPF(), prest.GetCNPJ(), "CNPJ/CPF Prestador", "infNFSe.DPS.infDPS.prest")
	v[PrestIM] = fallback.OrDash(nfse.Str(prest.GetIM()), w, "IM Prestador", "infNFSe.DPS.infDPS.prest.IM")
	v[PrestRazao] = fallback.OrDash(firstNonBlank(emit.GetXNome(), prest.GetXNome()), w, "xNome Prestador", "infNFSe.emit.xNome")
	v[PrestEndereco] = fallback.OrDash(format.Address(
		nfse.Str(enderNac.GetXLgr()),
		nfse.Str(enderNac.GetNro()),
		nfse.Str(enderNac.GetXCpl()),
		nfse.Str(enderNac.GetXBairro()),
	), w, "Endereço Prestador", "infNFSe.emit.enderNac")
	v[PrestMunicipio] = fallback.OrDash(format.JoinNonBlank(" - ", nfse.Str(inf.GetXLocEmi()), nfse.Str(enderNac.GetUF())),
		w, "Município/UF Prestador", "infNFSe.xLocEmi | infNFSe.emit.enderNac.UF")
	v[PrestCEP] = fallback.OrDash(format.CEP(nfse.Str(enderNac.GetCEP())), w, "CEP Prestador", "infNFSe.emit.enderNac.CEP")
	v[PrestFone] = fallback.OrDash(format.Phone(nfse.Str(prest.GetFone())), w, "Fone Prestador", "infNFSe.DPS.infDPS.prest.fone")
	v[PrestEmail] = fallback.OrDash(nfse.Str(prest.GetEmail()), w, "Email Prestador", "infNFSe.DPS.infDPS.prest.email")
	v[PrestSimples] = taxrules.SimplesNacionalStatus.Describe(prest.GetRegTrib().GetOpSimpNac())
	v[PrestRegimeSN] = taxrules.SimplesNacionalApportionment.Describe(prest.GetRegTrib().GetRegApTribSN())

	// Recipient.
	tomaEnd := toma.GetEnd()
	v[TomaCNPJ] = run.partyID(toma.GetCPF(), toma.GetCNPJ(), "CNPJ/CPF Tomador", "infNFSe.DPS.infDPS.toma")
	v[TomaIM] = fallback.Dash(nfse.Str(toma.GetIM()))
	v[TomaRazao] = fallback.OrDash(nfse.Str(toma.GetXNome()), w, "xNome Tomador", "infNFSe.DPS.infDPS.toma.xNome")
	v[TomaEndereco] = fallback.OrDash(format.Address(
		nfse.Str(tomaEnd.GetXLgr()),
		nfse.Str(tomaEnd.GetNro()),
		nfse.Str(tomaEnd.GetXCpl()),
		nfse.Str(tomaEnd.GetXBairro()),
	), w, "Endereço Tomador", "infNFSe.DPS.infDPS.toma.end")
	v[TomaCEP] = fallback.OrDash(format.CEP(nfse.Str(tomaEnd.GetEndNac().GetCEP())), w, "CEP Tomador", "infNFSe.DPS.infDPS.toma.end.endNac.CEP")
	v[TomaCMun] = fallback.Dash(d.recipientMunicipio.DisplayName())
	v[TomaEmail] = fallback.OrDash(nfse.Str(toma.GetEmail()), w, "Email Tomador", "infNFSe.DPS.infDPS.toma.email")
	v[TomaFone] = fallback.OrDash(format.Phone(nfse.Str(toma.GetFone())), w, "Fone Tomador", "infNFSe.DPS.infDPS.toma.fone")

	// Intermediary. Most documents have none, so absence is not reported.
	v[IntermCNPJ] = fallback.Dash(run.partyIDValue(interm.GetCPF(), interm.GetCNPJ()))
	v[IntermRazao] = fallback.Dash(nfse.Str(interm.GetXNome()))

	// Service.
	cServ := serv.GetCServ()
	v[ServCTribNac] = format.Limit(fallback.OrDash(d.nationalTax, w, "cTribNac/xTribNac",
		"infNFSe.DPS.infDPS.serv.cServ.cTribNac | infNFSe.xTribNac"), taxDescriptionLimit)
	v[ServCTribMun] = format.Limit(fallback.OrDash(d.municipalTax, w, "cTribMun/xTribMun",
		"infNFSe.DPS.infDPS.serv.cServ.cTribMun | infNFSe.xTribMun"), taxDescriptionLimit)
	v[ServNBS] = fallback.OrDash(nfse.Str(cServ.GetCNBS()), w, "cNBS", "infNFSe.DPS.infDPS.serv.cServ.cNBS")
	v[ServDescHTML] = format.DescriptionHTML(nfse.Str(cServ.GetXDescServ()))
	v[ServLocal] = fallback.Dash(d.provisionMunicipio.DisplayName())
	v[ServPais] = fallback.OrDash(nfse.Str(serv.GetLocPrest().GetCPaisPrestacao()), w, "cPaisPrestacao",
		"infNFSe.DPS.infDPS.serv.locPrest.cPaisPrestacao")

	// Municipal tax.
	v[ISSTributacao] = taxrules.TaxationNature.Describe(tribMun.GetTribISSQN())
	v[ISSPais] = fallback.OrDash(firstNonBlank(tribMun.GetCPaisResult(), tomaEnd.GetEndExt().GetCPais()), w, "cPaisResult",
		"infNFSe.DPS.infDPS.valores.trib.tribMun.cPaisResult | infNFSe.DPS.infDPS.toma.end.endExt.cPais")
	v[ISSMunInc] = fallback.Dash(d.incidenceMunicipio.DisplayName())
	v[ISSRegime] = taxrules.SpecialRegime.Describe(prest.GetRegTrib().GetRegEspTrib())
	v[ISSOperacao] = taxrules.ImmunityType.Describe(tribMun.GetTpImunidade())
	v[ISSSuspensao] = taxrules.SuspensionType.Describe(tribMun.GetExigSusp().GetTpSusp())
	v[ISSProcesso] = fallback.OrDash(nfse.Str(tribMun.GetExigSusp().GetNProcesso()), w, "nProcesso",
		"infNFSe.DPS.infDPS.valores.trib.tribMun.exigSusp.nProcesso")
	v[ISSBeneficio] = fallback.OrDash(nfse.Str(tribMun.GetBM().GetNBM()), w, "nBM",
		"infNFSe.DPS.infDPS.valores.trib.tribMun.BM.nBM")
	v[ISSDescIncond] = fallback.OrCurrency(valores.GetVDescCondIncond().GetVDescIncond(), w, "vDescIncond",
		"infNFSe.DPS.infDPS.valores.vDescCondIncond.vDescIncond")
	v[ISSDeducoes] = fallback.OrCurrency(valores.GetVDedRed().GetVDR(), w, "vDR",
		"infNFSe.DPS.infDPS.valores.vDedRed.vDR")
	v[ISSCalculo] = fallback.OrCurrency(tribMun.GetBM().GetVRedBCBM(), w, "vRedBCBM",
		"infNFSe.DPS.infDPS.valores.trib.tribMun.BM.vRedBCBM")
	v[ISSBC] = fallback.DefaultValue
	v[ISSAliq] = fallback.DefaultValue
	v[ISSApurado] = fallback.DefaultValue
	if d.issApplies {
		v[ISSBC] = format.Currency(d.serviceValue)
		v[ISSAliq] = fallback.OrPercent(inf.GetValores().GetPAliqAplic(), w, "pAliqAplic", "infNFSe.valores.pAliqAplic")
		v[ISSApurado] = fallback.OrCurrency(inf.GetValores().GetVISSQN(), w, "vISSQN", "infNFSe.valores.vISSQN")
	}
	v[ISSRetencao] = taxrules.ISSRetention.Describe(d.issRetention)

	// Federal tax.
	pc := tribFed.GetPisCofins()
	v[FedIRRF] = fallback.OrCurrency(tribFed.GetVRetIRRF(), w, "vRetIRRF", "infNFSe.DPS.infDPS.valores.trib.tribFed.vRetIRRF")
	v[FedPIS] = fallback.OrCurrency(pc.GetVPis(), w, "vPis", "infNFSe.DPS.infDPS.valores.trib.tribFed.piscofins.vPis")
	v[FedCOFINS] = fallback.OrCurrency(pc.GetVCofins(), w, "vCofins", "infNFSe.DPS.infDPS.valores.trib.tribFed.piscofins.vCofins")
	v[FedCSLL] = fallback.OrCurrency(tribFed.GetVRetCSLL(), w, "vRetCSLL", "infNFSe.DPS.infDPS.valores.trib.tribFed.vRetCSLL")
	v[FedCP] = fallback.OrCurrency(tribFed.GetVRetCP(), w, "vRetCP", "infNFSe.DPS.infDPS.valores.trib.tribFed.vRetCP")
	v[FedRetPisCofins] = taxrules.PisCofinsRetention.Describe(pc.GetTpRetPisCofins())
	v[FedTotal] = format.Currency(d.federalTotal)

	// Values.
	v[ValorServico] = format.Currency(d.serviceValue)
	v[ValorLiquido] = format.Currency(d.netValue)
	v[DescCond] = currencyOrSymbol(d.condDiscount)
	v[DescIncond] = currencyOrSymbol(d.uncondDisc)
	v[ISSRetido] = fallback.DefaultValue
	if intEquals(d.issRetention, 2) {
		v[ISSRetido] = fallback.OrCurrency(inf.GetValores().GetVISSQN(), w, "vISSQN", "infNFSe.valores.vISSQN")
	}
	v[FedRetidos] = currencyOrDash(d.federalRetained)
	v[PisCofinsRet] = currencyOrDash(d.pisCofinsRetains)

	// Approximate tax burden, printed as plain numbers.
	v[TotFed] = invariantOrDash(pTot.GetPTotTribFed())
	v[TotEst] = invariantOrDash(pTot.GetPTotTribEst())
	v[TotMun] = invariantOrDash(pTot.GetPTotTribMun())

	v[InfComplementares] = complementaryInfo(serv, infDPS.GetSubst())

	run.values = v
	return nil
}

// partyID formats a party's CPF or CNPJ following the layout precedence and
// warns when neither is present.
func (run *renderRun) partyID(cpf, cnpj *string, fieldName, path string) string {
	value := run.partyIDValue(cpf, cnpj)
	if value != "" {
		return value
	}
	return fallback.OrDash("", run.w, fieldName, path+".CNPJ | "+path+".CPF")
}

func (run *renderRun) partyIDValue(cpf, cnpj *string) string {
	c, j := nfse.Str(cpf), nfse.Str(cnpj)
	if run.layout.CPFFirst {
		if c != "" {
			return format.CPF(c)
		}
		return format.CNPJ(j)
	}
	if j != "" {
		return format.CNPJ(j)
	}
	return format.CPF(c)
}

// dateValue parses a document date and formats it, or warns and returns "-".
func dateValue(raw *string, layout func(time.Time) string, w *diagnostics.Collector, fieldName, path string) string {
	if t, ok := format.ParseDate(nfse.Str(raw)); ok {
		return layout(t)
	}
	return fallback.OrDash("", w, fieldName, path)
}

// complementaryInfo builds the free-text block: technical responsibility,
// complementary text, NBS code and the replaced document key. Values are
// escaped; the labels are markup.
func complementaryInfo(serv *nfse.Servico, subst *nfse.Subst) string {
	var parts []string
	info := serv.GetInfoCompl()

	if id := nfse.Str(info.GetIDDocTec()); id != "" {
		parts = append(parts, "Identificador de Responsabilidade Técnica: "+format.HTMLEscape(id))
	}
	if text := nfse.Str(info.GetXInfComp()); text != "" {
		parts = append(parts, "<b>Inf Cont:</b> "+format.HTMLEscape(text))
	}
	if nbs := nfse.Str(serv.GetCServ().GetCNBS()); nbs != "" && strings.Trim(nbs, "0") != "" {
		parts = append(parts, "<b>NBS:</b> "+format.HTMLEscape(nbs))
	}
	if key := nfse.Str(subst.GetChSubstda()); key != "" {
		parts = append(parts, "<b>NFS-e Substituída:</b> "+format.HTMLEscape(key))
	}

	if len(parts) == 0 {
		return fallback.DefaultValue
	}
	return strings.Join(parts, " | ")
}

func firstNonBlank(values ...*string) string {
	for _, v := range values {
		if s := nfse.Str(v); s != "" {
			return s
		}
	}
	return ""
}

func currencyOrSymbol(d decimal.Decimal) string {
	if d.IsZero() {
		return "R$"
	}
	return format.Currency(d)
}

func currencyOrDash(d decimal.Decimal) string {
	if d.IsZero() {
		return fallback.DefaultValue
	}
	return format.Currency(d)
}

func invariantOrDash(d *decimal.Decimal) string {
	if d == nil {
		return fallback.DefaultValue
	}
	return format.Invariant(*d)
}
