package render

import (
	"fmt"
	"strconv"

	"github.com/direction/nfse-danfe/internal/format"
	"github.com/direction/nfse-danfe/internal/municipio"
	"github.com/direction/nfse-danfe/internal/nfse"
	"github.com/direction/nfse-danfe/internal/qrcode"
	"github.com/shopspring/decimal"
)

// Public consultation portal; the restricted environment lives under a
// "producaorestrita." subdomain.
const verificationURLFormat = "https://www.%snfse.gov.br/ConsultaPublica/?tpc=1&chave=%s"

const legalValidityNotice = "NFS-e SEM VALIDADE JURÍDICA"

// derived holds values computed from several document fields.
type derived struct {
	accessKey       string
	verificationURL string
	qrSrc           string

	serviceValue decimal.Decimal
	condDiscount decimal.Decimal
	uncondDisc   decimal.Decimal
	netValue     decimal.Decimal

	nationalTax  string
	municipalTax string

	provisionMunicipio *municipio.Municipio
	incidenceMunicipio *municipio.Municipio
	recipientMunicipio *municipio.Municipio

	issRetention *int
	simplesOpt   *int
	issApplies   bool

	federalTotal     decimal.Decimal
	federalRetained  decimal.Decimal
	pisCofinsRetains decimal.Decimal

	cancelledBanner string
	validity        string
}

// derive computes every value that depends on more than one field or on an
// external collaborator.
func (run *renderRun) derive() error {
	inf, infDPS := run.inf, run.infDPS
	valores := infDPS.GetValores()
	trib := valores.GetTrib()

	// Access key and QR code.
	run.d.accessKey = accessKey(nfse.Str(inf.GetID()))
	run.d.verificationURL = VerificationURL(run.req.Environment, run.d.accessKey)
	png, err := run.r.qr.EncodePNG(run.d.verificationURL)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	run.d.qrSrc = qrcode.DataURI(png)

	// Values.
	if v := valores.GetVServPrest().GetVServ(); v != nil {
		run.d.serviceValue = *v
	} else {
		run.w.FieldMissing("vServ", "infNFSe.DPS.infDPS.valores.vServPrest.vServ", format.Currency(decimal.Zero))
	}
	run.d.condDiscount = nfse.DecOr(valores.GetVDescCondIncond().GetVDescCond())
	run.d.uncondDisc = nfse.DecOr(valores.GetVDescCondIncond().GetVDescIncond())
	run.d.netValue = nfse.DecOr(inf.GetValores().GetVLiq())

	// Tax classification descriptions.
	cServ := infDPS.GetServ().GetCServ()
	run.d.nationalTax = NationalTaxDescription(nfse.Str(cServ.GetCTribNac()), nfse.Str(inf.GetXTribNac()))
	run.d.municipalTax = MunicipalTaxDescription(nfse.Str(cServ.GetCTribMun()), nfse.Str(inf.GetXTribMun()))

	// Municipalities.
	if run.d.provisionMunicipio, err = run.resolveMunicipio(
		infDPS.GetServ().GetLocPrest().GetCLocPrestacao(),
		"cLocPrestacao", "infNFSe.DPS.infDPS.serv.locPrest.cLocPrestacao"); err != nil {
		return err
	}
	if run.d.incidenceMunicipio, err = run.resolveMunicipio(
		inf.GetCLocIncid(),
		"cLocIncid", "infNFSe.cLocIncid"); err != nil {
		return err
	}
	if run.d.recipientMunicipio, err = run.resolveMunicipio(
		infDPS.GetToma().GetEnd().GetEndNac().GetCMun(),
		"cMun", "infNFSe.DPS.infDPS.toma.end.endNac.cMun"); err != nil {
		return err
	}

	// Municipal tax applicability. Some issuers only fill the retention type
	// inside the municipal benefit block.
	tribMun := trib.GetTribMun()
	run.d.issRetention = tribMun.GetTpRetISSQN()
	if run.d.issRetention == nil || *run.d.issRetention == 0 {
		run.d.issRetention = tribMun.GetBM().GetTpRetISSQN()
	}
	run.d.simplesOpt = infDPS.GetPrest().GetRegTrib().GetOpSimpNac()
	run.d.issApplies = intEquals(run.d.issRetention, 2) || intEquals(run.d.simplesOpt, 1)

	// Federal aggregates.
	tribFed := trib.GetTribFed()
	pc := tribFed.GetPisCofins()
	irrf := nfse.DecOr(tribFed.GetVRetIRRF())
	cp := nfse.DecOr(tribFed.GetVRetCP())
	csll := nfse.DecOr(tribFed.GetVRetCSLL())
	pis := nfse.DecOr(pc.GetVPis())
	cofins := nfse.DecOr(pc.GetVCofins())

	run.d.federalTotal = nfse.DecOr(trib.GetTotTrib().GetVTotTrib().GetVTotTribFed())
	if run.d.federalTotal.IsZero() {
		run.d.federalTotal = irrf.Add(pis).Add(cofins).Add(cp).Add(csll)
	}
	run.d.federalRetained = irrf.Add(cp).Add(csll)
	run.d.pisCofinsRetains = PisCofinsRetained(pc.GetTpRetPisCofins(), pis, cofins)

	// Banners.
	if run.req.Cancelled {
		run.d.cancelledBanner = run.layout.CancelledBanner
	}
	if run.req.Environment != Production {
		run.d.validity = legalValidityNotice
	}
	return nil
}

// resolveMunicipio looks up a municipality code. An absent code yields a
// FieldMissing warning; a non-numeric or unknown code a MunicipalityNotFound
// warning. Only registry failures are returned as errors.
func (run *renderRun) resolveMunicipio(raw *string, fieldName, path string) (*municipio.Municipio, error) {
	value := nfse.Str(raw)
	if value == "" {
		run.w.FieldMissing(fieldName, path, "-")
		return nil, nil
	}

	code, err := strconv.Atoi(value)
	if err != nil {
		run.w.MunicipalityNotFound(path)
		return nil, nil
	}

	m, err := run.r.registry.GetMunicipio(&code)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if m == nil {
		run.w.MunicipalityNotFound(path)
	}
	return m, nil
}

// =============================================================================
// BUSINESS RULES
// =============================================================================

// accessKey strips the three-letter "NFS" prefix from the infNFSe Id.
func accessKey(id string) string {
	if len(id) <= 3 {
		return ""
	}
	return id[3:]
}

// VerificationURL returns the public consultation URL for an access key.
func VerificationURL(env Environment, key string) string {
	sub := ""
	if env != Production {
		sub = "producaorestrita."
	}
	return fmt.Sprintf(verificationURLFormat, sub, key)
}

// NationalTaxDescription joins the national tax code, grouped as 01.02.03,
// with its description. Either part may be missing; both missing yields "".
func NationalTaxDescription(code, description string) string {
	return joinCodeDescription(format.TaxCode(code), description)
}

// MunicipalTaxDescription joins the municipal tax code and description.
func MunicipalTaxDescription(code, description string) string {
	return joinCodeDescription(code, description)
}

func joinCodeDescription(code, description string) string {
	switch {
	case code == "" && description == "":
		return ""
	case code == "":
		return description
	case description == "":
		return code
	default:
		return code + " - " + description
	}
}

// PisCofinsRetained returns the PIS/COFINS amount withheld for a retention
// type.
//
// RULES:
//
//	1 (both retained)  -> 2 x PIS
//	3 (PIS only)       -> PIS
//	4 (COFINS only)    -> COFINS
//	2, absent, other   -> 0
//
// TODO: confirm with the tax team whether type 1 should be PIS + COFINS; the
// doubled PIS matches the documents issued so far.
func PisCofinsRetained(retentionType *int, pis, cofins decimal.Decimal) decimal.Decimal {
	if retentionType == nil {
		return decimal.Zero
	}
	switch *retentionType {
	case 1:
		return pis.Add(pis)
	case 3:
		return pis
	case 4:
		return cofins
	default:
		return decimal.Zero
	}
}

func intEquals(v *int, want int) bool {
	return v != nil && *v == want
}
