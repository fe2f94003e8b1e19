// Nil-safe accessors for the document model. Each returns nil when its
// receiver is nil, so lookups can chain through absent nodes.

package nfse

import "github.com/shopspring/decimal"

func (x *NFSe) GetVersao() *string {
	if x == nil {
		return nil
	}
	return x.Versao
}

func (x *NFSe) GetInfNFSe() *InfNFSe {
	if x == nil {
		return nil
	}
	return x.InfNFSe
}

func (x *InfNFSe) GetID() *string {
	if x == nil {
		return nil
	}
	return x.ID
}

func (x *InfNFSe) GetXLocEmi() *string {
	if x == nil {
		return nil
	}
	return x.XLocEmi
}

func (x *InfNFSe) GetXLocPrestacao() *string {
	if x == nil {
		return nil
	}
	return x.XLocPrestacao
}

func (x *InfNFSe) GetNNFSe() *string {
	if x == nil {
		return nil
	}
	return x.NNFSe
}

func (x *InfNFSe) GetCLocIncid() *string {
	if x == nil {
		return nil
	}
	return x.CLocIncid
}

func (x *InfNFSe) GetXLocIncid() *string {
	if x == nil {
		return nil
	}
	return x.XLocIncid
}

func (x *InfNFSe) GetXTribNac() *string {
	if x == nil {
		return nil
	}
	return x.XTribNac
}

func (x *InfNFSe) GetXTribMun() *string {
	if x == nil {
		return nil
	}
	return x.XTribMun
}

func (x *InfNFSe) GetXNBS() *string {
	if x == nil {
		return nil
	}
	return x.XNBS
}

func (x *InfNFSe) GetVerAplic() *string {
	if x == nil {
		return nil
	}
	return x.VerAplic
}

func (x *InfNFSe) GetAmbGer() *int {
	if x == nil {
		return nil
	}
	return x.AmbGer
}

func (x *InfNFSe) GetTpEmis() *int {
	if x == nil {
		return nil
	}
	return x.TpEmis
}

func (x *InfNFSe) GetProcEmi() *int {
	if x == nil {
		return nil
	}
	return x.ProcEmi
}

func (x *InfNFSe) GetCStat() *int {
	if x == nil {
		return nil
	}
	return x.CStat
}

func (x *InfNFSe) GetDhProc() *string {
	if x == nil {
		return nil
	}
	return x.DhProc
}

func (x *InfNFSe) GetNDFSe() *string {
	if x == nil {
		return nil
	}
	return x.NDFSe
}

func (x *InfNFSe) GetEmit() *Emit {
	if x == nil {
		return nil
	}
	return x.Emit
}

func (x *InfNFSe) GetValores() *ValoresNFSe {
	if x == nil {
		return nil
	}
	return x.Valores
}

func (x *InfNFSe) GetDPS() *DPS {
	if x == nil {
		return nil
	}
	return x.DPS
}

func (x *Emit) GetCNPJ() *string {
	if x == nil {
		return nil
	}
	return x.CNPJ
}

func (x *Emit) GetCPF() *string {
	if x == nil {
		return nil
	}
	return x.CPF
}

func (x *Emit) GetIM() *string {
	if x == nil {
		return nil
	}
	return x.IM
}

func (x *Emit) GetXNome() *string {
	if x == nil {
		return nil
	}
	return x.XNome
}

func (x *Emit) GetXFant() *string {
	if x == nil {
		return nil
	}
	return x.XFant
}

func (x *Emit) GetEnderNac() *EnderNac {
	if x == nil {
		return nil
	}
	return x.EnderNac
}

func (x *Emit) GetFone() *string {
	if x == nil {
		return nil
	}
	return x.Fone
}

func (x *Emit) GetEmail() *string {
	if x == nil {
		return nil
	}
	return x.Email
}

func (x *EnderNac) GetXLgr() *string {
	if x == nil {
		return nil
	}
	return x.XLgr
}

func (x *EnderNac) GetNro() *string {
	if x == nil {
		return nil
	}
	return x.Nro
}

func (x *EnderNac) GetXCpl() *string {
	if x == nil {
		return nil
	}
	return x.XCpl
}

func (x *EnderNac) GetXBairro() *string {
	if x == nil {
		return nil
	}
	return x.XBairro
}

func (x *EnderNac) GetCMun() *string {
	if x == nil {
		return nil
	}
	return x.CMun
}

func (x *EnderNac) GetUF() *string {
	if x == nil {
		return nil
	}
	return x.UF
}

func (x *EnderNac) GetCEP() *string {
	if x == nil {
		return nil
	}
	return x.CEP
}

func (x *ValoresNFSe) GetVCalcDR() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.VCalcDR
}

func (x *ValoresNFSe) GetVBC() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.VBC
}

func (x *ValoresNFSe) GetPAliqAplic() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.PAliqAplic
}

func (x *ValoresNFSe) GetVISSQN() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.VISSQN
}

func (x *ValoresNFSe) GetVTotalRet() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.VTotalRet
}

func (x *ValoresNFSe) GetVLiq() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.VLiq
}

func (x *DPS) GetVersao() *string {
	if x == nil {
		return nil
	}
	return x.Versao
}

func (x *DPS) GetInfDPS() *InfDPS {
	if x == nil {
		return nil
	}
	return x.InfDPS
}

func (x *InfDPS) GetID() *string {
	if x == nil {
		return nil
	}
	return x.ID
}

func (x *InfDPS) GetTpAmb() *int {
	if x == nil {
		return nil
	}
	return x.TpAmb
}

func (x *InfDPS) GetDhEmi() *string {
	if x == nil {
		return nil
	}
	return x.DhEmi
}

func (x *InfDPS) GetVerAplic() *string {
	if x == nil {
		return nil
	}
	return x.VerAplic
}

func (x *InfDPS) GetSerie() *string {
	if x == nil {
		return nil
	}
	return x.Serie
}

func (x *InfDPS) GetNDPS() *string {
	if x == nil {
		return nil
	}
	return x.NDPS
}

func (x *InfDPS) GetDCompet() *string {
	if x == nil {
		return nil
	}
	return x.DCompet
}

func (x *InfDPS) GetTpEmit() *int {
	if x == nil {
		return nil
	}
	return x.TpEmit
}

func (x *InfDPS) GetCLocEmi() *string {
	if x == nil {
		return nil
	}
	return x.CLocEmi
}

func (x *InfDPS) GetSubst() *Subst {
	if x == nil {
		return nil
	}
	return x.Subst
}

func (x *InfDPS) GetPrest() *Prestador {
	if x == nil {
		return nil
	}
	return x.Prest
}

func (x *InfDPS) GetToma() *Pessoa {
	if x == nil {
		return nil
	}
	return x.Toma
}

func (x *InfDPS) GetInterm() *Pessoa {
	if x == nil {
		return nil
	}
	return x.Interm
}

func (x *InfDPS) GetServ() *Servico {
	if x == nil {
		return nil
	}
	return x.Serv
}

func (x *InfDPS) GetValores() *Valores {
	if x == nil {
		return nil
	}
	return x.Valores
}

func (x *Subst) GetChSubstda() *string {
	if x == nil {
		return nil
	}
	return x.ChSubstda
}

func (x *Subst) GetCMotivo() *string {
	if x == nil {
		return nil
	}
	return x.CMotivo
}

func (x *Subst) GetXMotivo() *string {
	if x == nil {
		return nil
	}
	return x.XMotivo
}

func (x *Prestador) GetCNPJ() *string {
	if x == nil {
		return nil
	}
	return x.CNPJ
}

func (x *Prestador) GetCPF() *string {
	if x == nil {
		return nil
	}
	return x.CPF
}

func (x *Prestador) GetNIF() *string {
	if x == nil {
		return nil
	}
	return x.NIF
}

func (x *Prestador) GetIM() *string {
	if x == nil {
		return nil
	}
	return x.IM
}

func (x *Prestador) GetXNome() *string {
	if x == nil {
		return nil
	}
	return x.XNome
}

func (x *Prestador) GetEnd() *Endereco {
	if x == nil {
		return nil
	}
	return x.End
}

func (x *Prestador) GetFone() *string {
	if x == nil {
		return nil
	}
	return x.Fone
}

func (x *Prestador) GetEmail() *string {
	if x == nil {
		return nil
	}
	return x.Email
}

func (x *Prestador) GetRegTrib() *RegTrib {
	if x == nil {
		return nil
	}
	return x.RegTrib
}

func (x *Pessoa) GetCNPJ() *string {
	if x == nil {
		return nil
	}
	return x.CNPJ
}

func (x *Pessoa) GetCPF() *string {
	if x == nil {
		return nil
	}
	return x.CPF
}

func (x *Pessoa) GetNIF() *string {
	if x == nil {
		return nil
	}
	return x.NIF
}

func (x *Pessoa) GetIM() *string {
	if x == nil {
		return nil
	}
	return x.IM
}

func (x *Pessoa) GetXNome() *string {
	if x == nil {
		return nil
	}
	return x.XNome
}

func (x *Pessoa) GetEnd() *Endereco {
	if x == nil {
		return nil
	}
	return x.End
}

func (x *Pessoa) GetFone() *string {
	if x == nil {
		return nil
	}
	return x.Fone
}

func (x *Pessoa) GetEmail() *string {
	if x == nil {
		return nil
	}
	return x.Email
}

func (x *Endereco) GetEndNac() *EndNac {
	if x == nil {
		return nil
	}
	return x.EndNac
}

func (x *Endereco) GetEndExt() *EndExt {
	if x == nil {
		return nil
	}
	return x.EndExt
}

func (x *Endereco) GetXLgr() *string {
	if x == nil {
		return nil
	}
	return x.XLgr
}

func (x *Endereco) GetNro() *string {
	if x == nil {
		return nil
	}
	return x.Nro
}

func (x *Endereco) GetXCpl() *string {
	if x == nil {
		return nil
	}
	return x.XCpl
}

func (x *Endereco) GetXBairro() *string {
	if x == nil {
		return nil
	}
	return x.XBairro
}

func (x *EndNac) GetCMun() *string {
	if x == nil {
		return nil
	}
	return x.CMun
}

func (x *EndNac) GetCEP() *string {
	if x == nil {
		return nil
	}
	return x.CEP
}

func (x *EndExt) GetCPais() *string {
	if x == nil {
		return nil
	}
	return x.CPais
}

func (x *EndExt) GetCEndPost() *string {
	if x == nil {
		return nil
	}
	return x.CEndPost
}

func (x *EndExt) GetXCidade() *string {
	if x == nil {
		return nil
	}
	return x.XCidade
}

func (x *EndExt) GetXEstProvReg() *string {
	if x == nil {
		return nil
	}
	return x.XEstProvReg
}

func (x *RegTrib) GetOpSimpNac() *int {
	if x == nil {
		return nil
	}
	return x.OpSimpNac
}

func (x *RegTrib) GetRegApTribSN() *int {
	if x == nil {
		return nil
	}
	return x.RegApTribSN
}

func (x *RegTrib) GetRegEspTrib() *int {
	if x == nil {
		return nil
	}
	return x.RegEspTrib
}

func (x *Servico) GetLocPrest() *LocPrest {
	if x == nil {
		return nil
	}
	return x.LocPrest
}

func (x *Servico) GetCServ() *CServ {
	if x == nil {
		return nil
	}
	return x.CServ
}

func (x *Servico) GetInfoCompl() *InfoCompl {
	if x == nil {
		return nil
	}
	return x.InfoCompl
}

func (x *LocPrest) GetCLocPrestacao() *string {
	if x == nil {
		return nil
	}
	return x.CLocPrestacao
}

func (x *LocPrest) GetCPaisPrestacao() *string {
	if x == nil {
		return nil
	}
	return x.CPaisPrestacao
}

func (x *CServ) GetCTribNac() *string {
	if x == nil {
		return nil
	}
	return x.CTribNac
}

func (x *CServ) GetCTribMun() *string {
	if x == nil {
		return nil
	}
	return x.CTribMun
}

func (x *CServ) GetXDescServ() *string {
	if x == nil {
		return nil
	}
	return x.XDescServ
}

func (x *CServ) GetCNBS() *string {
	if x == nil {
		return nil
	}
	return x.CNBS
}

func (x *InfoCompl) GetIDDocTec() *string {
	if x == nil {
		return nil
	}
	return x.IDDocTec
}

func (x *InfoCompl) GetDocRef() *string {
	if x == nil {
		return nil
	}
	return x.DocRef
}

func (x *InfoCompl) GetXInfComp() *string {
	if x == nil {
		return nil
	}
	return x.XInfComp
}

func (x *Valores) GetVServPrest() *VServPrest {
	if x == nil {
		return nil
	}
	return x.VServPrest
}

func (x *Valores) GetVDescCondIncond() *VDescCondIncond {
	if x == nil {
		return nil
	}
	return x.VDescCondIncond
}

func (x *Valores) GetVDedRed() *VDedRed {
	if x == nil {
		return nil
	}
	return x.VDedRed
}

func (x *Valores) GetTrib() *Trib {
	if x == nil {
		return nil
	}
	return x.Trib
}

func (x *VServPrest) GetVReceb() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.VReceb
}

func (x *VServPrest) GetVServ() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.VServ
}

func (x *VDescCondIncond) GetVDescIncond() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.VDescIncond
}

func (x *VDescCondIncond) GetVDescCond() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.VDescCond
}

func (x *VDedRed) GetPDR() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.PDR
}

func (x *VDedRed) GetVDR() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.VDR
}

func (x *Trib) GetTribMun() *TribMun {
	if x == nil {
		return nil
	}
	return x.TribMun
}

func (x *Trib) GetTribFed() *TribFed {
	if x == nil {
		return nil
	}
	return x.TribFed
}

func (x *Trib) GetTotTrib() *TotTrib {
	if x == nil {
		return nil
	}
	return x.TotTrib
}

func (x *TribMun) GetTribISSQN() *int {
	if x == nil {
		return nil
	}
	return x.TribISSQN
}

func (x *TribMun) GetCPaisResult() *string {
	if x == nil {
		return nil
	}
	return x.CPaisResult
}

func (x *TribMun) GetBM() *BM {
	if x == nil {
		return nil
	}
	return x.BM
}

func (x *TribMun) GetExigSusp() *ExigSusp {
	if x == nil {
		return nil
	}
	return x.ExigSusp
}

func (x *TribMun) GetTpImunidade() *int {
	if x == nil {
		return nil
	}
	return x.TpImunidade
}

func (x *TribMun) GetPAliq() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.PAliq
}

func (x *TribMun) GetTpRetISSQN() *int {
	if x == nil {
		return nil
	}
	return x.TpRetISSQN
}

func (x *BM) GetNBM() *string {
	if x == nil {
		return nil
	}
	return x.NBM
}

func (x *BM) GetVRedBCBM() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.VRedBCBM
}

func (x *BM) GetPRedBCBM() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.PRedBCBM
}

func (x *BM) GetTpRetISSQN() *int {
	if x == nil {
		return nil
	}
	return x.TpRetISSQN
}

func (x *ExigSusp) GetTpSusp() *int {
	if x == nil {
		return nil
	}
	return x.TpSusp
}

func (x *ExigSusp) GetNProcesso() *string {
	if x == nil {
		return nil
	}
	return x.NProcesso
}

func (x *TribFed) GetPisCofins() *PisCofins {
	if x == nil {
		return nil
	}
	return x.PisCofins
}

func (x *TribFed) GetVRetCP() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.VRetCP
}

func (x *TribFed) GetVRetIRRF() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.VRetIRRF
}

func (x *TribFed) GetVRetCSLL() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.VRetCSLL
}

func (x *PisCofins) GetCST() *string {
	if x == nil {
		return nil
	}
	return x.CST
}

func (x *PisCofins) GetVBCPisCofins() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.VBCPisCofins
}

func (x *PisCofins) GetPAliqPis() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.PAliqPis
}

func (x *PisCofins) GetPAliqCofins() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.PAliqCofins
}

func (x *PisCofins) GetVPis() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.VPis
}

func (x *PisCofins) GetVCofins() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.VCofins
}

func (x *PisCofins) GetTpRetPisCofins() *int {
	if x == nil {
		return nil
	}
	return x.TpRetPisCofins
}

func (x *TotTrib) GetVTotTrib() *VTotTrib {
	if x == nil {
		return nil
	}
	return x.VTotTrib
}

func (x *TotTrib) GetPTotTrib() *PTotTrib {
	if x == nil {
		return nil
	}
	return x.PTotTrib
}

func (x *TotTrib) GetIndTotTrib() *int {
	if x == nil {
		return nil
	}
	return x.IndTotTrib
}

func (x *TotTrib) GetPTotTribSN() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.PTotTribSN
}

func (x *VTotTrib) GetVTotTribFed() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.VTotTribFed
}

func (x *VTotTrib) GetVTotTribEst() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.VTotTribEst
}

func (x *VTotTrib) GetVTotTribMun() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.VTotTribMun
}

func (x *PTotTrib) GetPTotTribFed() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.PTotTribFed
}

func (x *PTotTrib) GetPTotTribEst() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.PTotTribEst
}

func (x *PTotTrib) GetPTotTribMun() *decimal.Decimal {
	if x == nil {
		return nil
	}
	return x.PTotTribMun
}
