// =============================================================================
// NFSe DANFSe Renderer - NFSe Document Model
// =============================================================================
//
// This module mirrors the national NFSe XML schema
// (namespace http://www.sped.fazenda.gov.br/nfse) as far as the DANFSe needs
// it. Every node and every leaf is a pointer: absence is data, and the
// renderer reports it as a warning instead of failing.
//
// STRUCTURE:
//
//   NFSe
//   └── infNFSe (Id, numbers, locations, tax descriptions, dhProc)
//       ├── emit      (issuer as recorded by the tax authority)
//       ├── valores   (computed base, rate, ISSQN, net value)
//       └── DPS
//           └── infDPS (dates, series, number, issuer role)
//               ├── subst   (replaced document)
//               ├── prest   (provider, with regTrib)
//               ├── toma    (recipient)
//               ├── interm  (intermediary)
//               ├── serv    (location, classification, description)
//               └── valores (service value, discounts, trib)
//
// ACCESS:
//   Use the generated-style Get* accessors (getters.go). They are nil-safe,
//   so a chain such as doc.GetInfNFSe().GetDPS().GetInfDPS().GetServ()
//   short-circuits to nil at the first missing node.
//
// Names follow the schema element names.
//
// =============================================================================

package nfse

import (
	"encoding/xml"

	"github.com/shopspring/decimal"
)

// Namespace is the XML namespace of the national NFSe schema.
const Namespace = "http://www.sped.fazenda.gov.br/nfse"

// NFSe is the root element of an authorized service invoice.
type NFSe struct {
	XMLName xml.Name `xml:"NFSe"`
	Versao  *string  `xml:"versao,attr"`
	InfNFSe *InfNFSe `xml:"infNFSe"`
}

// InfNFSe holds the data added by the tax authority on authorization.
type InfNFSe struct {
	ID            *string      `xml:"Id,attr"`
	XLocEmi       *string      `xml:"xLocEmi"`
	XLocPrestacao *string      `xml:"xLocPrestacao"`
	NNFSe         *string      `xml:"nNFSe"`
	CLocIncid     *string      `xml:"cLocIncid"`
	XLocIncid     *string      `xml:"xLocIncid"`
	XTribNac      *string      `xml:"xTribNac"`
	XTribMun      *string      `xml:"xTribMun"`
	XNBS          *string      `xml:"xNBS"`
	VerAplic      *string      `xml:"verAplic"`
	AmbGer        *int         `xml:"ambGer"`
	TpEmis        *int         `xml:"tpEmis"`
	ProcEmi       *int         `xml:"procEmi"`
	CStat         *int         `xml:"cStat"`
	DhProc        *string      `xml:"dhProc"`
	NDFSe         *string      `xml:"nDFSe"`
	Emit          *Emit        `xml:"emit"`
	Valores       *ValoresNFSe `xml:"valores"`
	DPS           *DPS         `xml:"DPS"`
}

// Emit is the issuer block recorded on the NFSe.
type Emit struct {
	CNPJ     *string   `xml:"CNPJ"`
	CPF      *string   `xml:"CPF"`
	IM       *string   `xml:"IM"`
	XNome    *string   `xml:"xNome"`
	XFant    *string   `xml:"xFant"`
	EnderNac *EnderNac `xml:"enderNac"`
	Fone     *string   `xml:"fone"`
	Email    *string   `xml:"email"`
}

// EnderNac is a national address with municipality and state.
type EnderNac struct {
	XLgr    *string `xml:"xLgr"`
	Nro     *string `xml:"nro"`
	XCpl    *string `xml:"xCpl"`
	XBairro *string `xml:"xBairro"`
	CMun    *string `xml:"cMun"`
	UF      *string `xml:"UF"`
	CEP     *string `xml:"CEP"`
}

// ValoresNFSe holds the values computed by the tax authority.
type ValoresNFSe struct {
	VCalcDR    *decimal.Decimal `xml:"vCalcDR"`
	VBC        *decimal.Decimal `xml:"vBC"`
	PAliqAplic *decimal.Decimal `xml:"pAliqAplic"`
	VISSQN     *decimal.Decimal `xml:"vISSQN"`
	VTotalRet  *decimal.Decimal `xml:"vTotalRet"`
	VLiq       *decimal.Decimal `xml:"vLiq"`
}

// DPS is the service provision declaration the NFSe was generated from.
type DPS struct {
	Versao *string `xml:"versao,attr"`
	InfDPS *InfDPS `xml:"infDPS"`
}

// InfDPS holds the declaration data.
type InfDPS struct {
	ID       *string    `xml:"Id,attr"`
	TpAmb    *int       `xml:"tpAmb"`
	DhEmi    *string    `xml:"dhEmi"`
	VerAplic *string    `xml:"verAplic"`
	Serie    *string    `xml:"serie"`
	NDPS     *string    `xml:"nDPS"`
	DCompet  *string    `xml:"dCompet"`
	TpEmit   *int       `xml:"tpEmit"`
	CLocEmi  *string    `xml:"cLocEmi"`
	Subst    *Subst     `xml:"subst"`
	Prest    *Prestador `xml:"prest"`
	Toma     *Pessoa    `xml:"toma"`
	Interm   *Pessoa    `xml:"interm"`
	Serv     *Servico   `xml:"serv"`
	Valores  *Valores   `xml:"valores"`
}

// Subst identifies the NFSe replaced by this one.
type Subst struct {
	ChSubstda *string `xml:"chSubstda"`
	CMotivo   *string `xml:"cMotivo"`
	XMotivo   *string `xml:"xMotivo"`
}

// Prestador is the service provider.
type Prestador struct {
	CNPJ    *string   `xml:"CNPJ"`
	CPF     *string   `xml:"CPF"`
	NIF     *string   `xml:"NIF"`
	IM      *string   `xml:"IM"`
	XNome   *string   `xml:"xNome"`
	End     *Endereco `xml:"end"`
	Fone    *string   `xml:"fone"`
	Email   *string   `xml:"email"`
	RegTrib *RegTrib  `xml:"regTrib"`
}

// Pessoa is a recipient or intermediary.
type Pessoa struct {
	CNPJ  *string   `xml:"CNPJ"`
	CPF   *string   `xml:"CPF"`
	NIF   *string   `xml:"NIF"`
	IM    *string   `xml:"IM"`
	XNome *string   `xml:"xNome"`
	End   *Endereco `xml:"end"`
	Fone  *string   `xml:"fone"`
	Email *string   `xml:"email"`
}

// Endereco is a declared address, national or foreign.
type Endereco struct {
	EndNac  *EndNac `xml:"endNac"`
	EndExt  *EndExt `xml:"endExt"`
	XLgr    *string `xml:"xLgr"`
	Nro     *string `xml:"nro"`
	XCpl    *string `xml:"xCpl"`
	XBairro *string `xml:"xBairro"`
}

// EndNac is the national part of a declared address.
type EndNac struct {
	CMun *string `xml:"cMun"`
	CEP  *string `xml:"CEP"`
}

// EndExt is the foreign part of a declared address.
type EndExt struct {
	CPais       *string `xml:"cPais"`
	CEndPost    *string `xml:"cEndPost"`
	XCidade     *string `xml:"xCidade"`
	XEstProvReg *string `xml:"xEstProvReg"`
}

// RegTrib is the provider's tax regime.
type RegTrib struct {
	OpSimpNac   *int `xml:"opSimpNac"`
	RegApTribSN *int `xml:"regApTribSN"`
	RegEspTrib  *int `xml:"regEspTrib"`
}

// Servico describes the service rendered.
type Servico struct {
	LocPrest  *LocPrest  `xml:"locPrest"`
	CServ     *CServ     `xml:"cServ"`
	InfoCompl *InfoCompl `xml:"infoCompl"`
}

// LocPrest is where the service was rendered.
type LocPrest struct {
	CLocPrestacao  *string `xml:"cLocPrestacao"`
	CPaisPrestacao *string `xml:"cPaisPrestacao"`
}

// CServ is the service classification.
type CServ struct {
	CTribNac  *string `xml:"cTribNac"`
	CTribMun  *string `xml:"cTribMun"`
	XDescServ *string `xml:"xDescServ"`
	CNBS      *string `xml:"cNBS"`
}

// InfoCompl is free complementary information.
type InfoCompl struct {
	IDDocTec *string `xml:"idDocTec"`
	DocRef   *string `xml:"docRef"`
	XInfComp *string `xml:"xInfComp"`
}

// Valores holds the declared values.
type Valores struct {
	VServPrest      *VServPrest      `xml:"vServPrest"`
	VDescCondIncond *VDescCondIncond `xml:"vDescCondIncond"`
	VDedRed         *VDedRed         `xml:"vDedRed"`
	Trib            *Trib            `xml:"trib"`
}

// VServPrest is the service value.
type VServPrest struct {
	VReceb *decimal.Decimal `xml:"vReceb"`
	VServ  *decimal.Decimal `xml:"vServ"`
}

// VDescCondIncond holds conditional and unconditional discounts.
type VDescCondIncond struct {
	VDescIncond *decimal.Decimal `xml:"vDescIncond"`
	VDescCond   *decimal.Decimal `xml:"vDescCond"`
}

// VDedRed holds deductions and reductions.
type VDedRed struct {
	PDR *decimal.Decimal `xml:"pDR"`
	VDR *decimal.Decimal `xml:"vDR"`
}

// Trib groups the municipal, federal and total tax blocks.
type Trib struct {
	TribMun *TribMun `xml:"tribMun"`
	TribFed *TribFed `xml:"tribFed"`
	TotTrib *TotTrib `xml:"totTrib"`
}

// TribMun is the municipal tax (ISSQN) block.
type TribMun struct {
	TribISSQN   *int             `xml:"tribISSQN"`
	CPaisResult *string          `xml:"cPaisResult"`
	BM          *BM              `xml:"BM"`
	ExigSusp    *ExigSusp        `xml:"exigSusp"`
	TpImunidade *int             `xml:"tpImunidade"`
	PAliq       *decimal.Decimal `xml:"pAliq"`
	TpRetISSQN  *int             `xml:"tpRetISSQN"`
}

// BM is a municipal tax benefit.
type BM struct {
	NBM        *string          `xml:"nBM"`
	VRedBCBM   *decimal.Decimal `xml:"vRedBCBM"`
	PRedBCBM   *decimal.Decimal `xml:"pRedBCBM"`
	TpRetISSQN *int             `xml:"tpRetISSQN"`
}

// ExigSusp is a suspension of ISSQN enforceability.
type ExigSusp struct {
	TpSusp    *int    `xml:"tpSusp"`
	NProcesso *string `xml:"nProcesso"`
}

// TribFed is the federal tax block.
type TribFed struct {
	PisCofins *PisCofins       `xml:"piscofins"`
	VRetCP    *decimal.Decimal `xml:"vRetCP"`
	VRetIRRF  *decimal.Decimal `xml:"vRetIRRF"`
	VRetCSLL  *decimal.Decimal `xml:"vRetCSLL"`
}

// PisCofins holds PIS and COFINS values and their retention type.
type PisCofins struct {
	CST            *string          `xml:"CST"`
	VBCPisCofins   *decimal.Decimal `xml:"vBCPisCofins"`
	PAliqPis       *decimal.Decimal `xml:"pAliqPis"`
	PAliqCofins    *decimal.Decimal `xml:"pAliqCofins"`
	VPis           *decimal.Decimal `xml:"vPis"`
	VCofins        *decimal.Decimal `xml:"vCofins"`
	TpRetPisCofins *int             `xml:"tpRetPisCofins"`
}

// TotTrib is the approximate total tax burden.
type TotTrib struct {
	VTotTrib   *VTotTrib        `xml:"vTotTrib"`
	PTotTrib   *PTotTrib        `xml:"pTotTrib"`
	IndTotTrib *int             `xml:"indTotTrib"`
	PTotTribSN *decimal.Decimal `xml:"pTotTribSN"`
}

// VTotTrib is the total tax burden in reais.
type VTotTrib struct {
	VTotTribFed *decimal.Decimal `xml:"vTotTribFed"`
	VTotTribEst *decimal.Decimal `xml:"vTotTribEst"`
	VTotTribMun *decimal.Decimal `xml:"vTotTribMun"`
}

// PTotTrib is the total tax burden in percent.
type PTotTrib struct {
	PTotTribFed *decimal.Decimal `xml:"pTotTribFed"`
	PTotTribEst *decimal.Decimal `xml:"pTotTribEst"`
	PTotTribMun *decimal.Decimal `xml:"pTotTribMun"`
}
