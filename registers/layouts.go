package registers

// ST0 is the master register: integer divider N, charge pump current
// selection and PFD delay.
type ST0 struct {
	CPSel  uint32
	PFDDel uint32
	N      uint32

	VCOCalbDisable bool
}

func (r *ST0) Addr() Addr { return AddrST0 }

func (r *ST0) bindings() []binding {
	return []binding{
		num("CP_SEL", 5, 21, &r.CPSel),
		num("PFD_DEL", 2, 19, &r.PFDDel),
		num("N", 17, 0, &r.N),
		flg("VCO_CALB_DISABLE", 26, &r.VCOCalbDisable),
	}
}

func (r *ST0) Encode() uint32        { return encode(r.bindings()) }
func (r *ST0) Decode(payload uint32) { decode(payload, r.bindings()) }

// ST1 holds the fractional numerator FRAC and the RF1 output controls,
// including the PLL input path selector.
type ST1 struct {
	Frac uint32

	DBR       bool
	RF1OutPD  bool
	ManCalbEn bool
	PLLSel    bool
	RF1Sel    bool
}

func (r *ST1) Addr() Addr { return AddrST1 }

func (r *ST1) bindings() []binding {
	return []binding{
		num("FRAC", 21, 0, &r.Frac),
		flg("DBR", 26, &r.DBR),
		flg("RF1_OUT_PD", 24, &r.RF1OutPD),
		flg("MAN_CALB_EN", 23, &r.ManCalbEn),
		flg("PLL_SEL", 22, &r.PLLSel),
		flg("RF1_SEL", 21, &r.RF1Sel),
	}
}

func (r *ST1) Encode() uint32        { return encode(r.bindings()) }
func (r *ST1) Decode(payload uint32) { decode(payload, r.bindings()) }

// ST2 holds the fractional modulus MOD and the RF2 output controls.
type ST2 struct {
	Mod uint32

	DBR      bool
	RF2OutPD bool
}

func (r *ST2) Addr() Addr { return AddrST2 }

func (r *ST2) bindings() []binding {
	return []binding{
		num("MOD", 21, 0, &r.Mod),
		flg("DBR", 26, &r.DBR),
		flg("RF2_OUT_PD", 21, &r.RF2OutPD),
	}
}

func (r *ST2) Encode() uint32        { return encode(r.bindings()) }
func (r *ST2) Decode(payload uint32) { decode(payload, r.bindings()) }

// ST3 holds the reference divider R, the reference path selector, charge
// pump leakage controls and the device power down bit.
type ST3 struct {
	CPLeak     uint32
	PFDDelMode uint32
	RefPathSel uint32
	R          uint32

	DBR       bool
	PD        bool
	CPLeakX2  bool
	CPLeakDir bool
	DnsplitEn bool
}

func (r *ST3) Addr() Addr { return AddrST3 }

func (r *ST3) bindings() []binding {
	return []binding{
		num("CP_LEAK", 5, 19, &r.CPLeak),
		num("PFD_DEL_MODE", 2, 15, &r.PFDDelMode),
		num("REF_PATH_SEL", 2, 13, &r.RefPathSel),
		num("R", 13, 0, &r.R),
		flg("DBR", 26, &r.DBR),
		flg("PD", 25, &r.PD),
		flg("CP_LEAK_X2", 24, &r.CPLeakX2),
		flg("CP_LEAK_DIR", 18, &r.CPLeakDir),
		flg("DNSPLIT_EN", 17, &r.DnsplitEn),
	}
}

func (r *ST3) Encode() uint32        { return encode(r.bindings()) }
func (r *ST3) Decode(payload uint32) { decode(payload, r.bindings()) }

// ST4 holds lock detector control, the reference buffer mode, calibrator
// supply mode bits and the VCO amplitude.
type ST4 struct {
	VCOAmp      uint32
	RefBuffMode uint32
	LDPrec      uint32
	LDCount     uint32

	Calb3V3Mode1 bool
	RFOut3V3     bool
	ExtVCOEn     bool
	Calb3V3Mode0 bool
	VCalbMode    bool
	KVCOCompDis  bool
	PFDPol       bool
	MuteLockEn   bool
	LDActiveLow  bool
}

func (r *ST4) Addr() Addr { return AddrST4 }

func (r *ST4) bindings() []binding {
	return []binding{
		num("VCO_AMP", 3, 15, &r.VCOAmp),
		num("REF_BUFF_MODE", 2, 8, &r.RefBuffMode),
		num("LD_PREC", 3, 3, &r.LDPrec),
		num("LD_COUNT", 3, 0, &r.LDCount),
		flg("CALB_3V3_MODE1", 24, &r.Calb3V3Mode1),
		flg("RF_OUT_3V3", 23, &r.RFOut3V3),
		flg("EXT_VCO_EN", 19, &r.ExtVCOEn),
		flg("CALB_3V3_MODE0", 14, &r.Calb3V3Mode0),
		flg("VCALB_MODE", 12, &r.VCalbMode),
		flg("KVCO_COMP_DIS", 11, &r.KVCOCompDis),
		flg("PFD_POL", 10, &r.PFDPol),
		flg("MUTE_LOCK_EN", 7, &r.MuteLockEn),
		flg("LD_ACTIVELOW", 6, &r.LDActiveLow),
	}
}

func (r *ST4) Encode() uint32        { return encode(r.bindings()) }
func (r *ST4) Decode(payload uint32) { decode(payload, r.bindings()) }

// ST5 holds the low power mode control bits.
type ST5 struct {
	RF2OutbufLP bool
	DemuxLP     bool
	RefBuffLP   bool
}

func (r *ST5) Addr() Addr { return AddrST5 }

func (r *ST5) bindings() []binding {
	return []binding{
		flg("RF2_OUTBUF_LP", 4, &r.RF2OutbufLP),
		flg("DEMUX_LP", 2, &r.DemuxLP),
		flg("REF_BUFF_LP", 0, &r.RefBuffLP),
	}
}

func (r *ST5) Encode() uint32        { return encode(r.bindings()) }
func (r *ST5) Decode(payload uint32) { decode(payload, r.bindings()) }

// ST6 holds the VCO calibrator divider and the delta-sigma modulator
// settings.
type ST6 struct {
	DSMOrder uint32
	PrchgDel uint32
	CalDiv   uint32

	Dithering   bool
	EnAutocal   bool
	CalTempComp bool
	CalAccEn    bool
}

func (r *ST6) Addr() Addr { return AddrST6 }

func (r *ST6) bindings() []binding {
	return []binding{
		num("DSM_ORDER", 2, 22, &r.DSMOrder),
		num("PRCHG_DEL", 2, 10, &r.PrchgDel),
		num("CAL_DIV", 9, 0, &r.CalDiv),
		flg("DITHERING", 26, &r.Dithering),
		flg("EN_AUTOCAL", 20, &r.EnAutocal),
		flg("CAL_TEMP_COMP", 12, &r.CalTempComp),
		flg("CAL_ACC_EN", 1, &r.CalAccEn),
	}
}

func (r *ST6) Encode() uint32        { return encode(r.bindings()) }
func (r *ST6) Decode(payload uint32) { decode(payload, r.bindings()) }

// ST7 holds fast lock control and the LD_SDO pin settings.
type ST7 struct {
	CPSelFL   uint32
	FstlckCnt uint32

	LDSDOTristate     bool
	LDSDOMode         bool
	SPIDataOutDisable bool
	CycleSlipEn       bool
	FstlckEn          bool
}

func (r *ST7) Addr() Addr { return AddrST7 }

func (r *ST7) bindings() []binding {
	return []binding{
		num("CP_SEL_FL", 5, 13, &r.CPSelFL),
		num("FSTLCK_CNT", 13, 0, &r.FstlckCnt),
		flg("LD_SDO_TRISTATE", 25, &r.LDSDOTristate),
		flg("LD_SDO_MODE", 24, &r.LDSDOMode),
		flg("SPI_DATA_OUT_DISABLE", 23, &r.SPIDataOutDisable),
		flg("CYCLE_SLIP_EN", 19, &r.CycleSlipEn),
		flg("FSTLCK_EN", 18, &r.FstlckEn),
	}
}

func (r *ST7) Encode() uint32        { return encode(r.bindings()) }
func (r *ST7) Decode(payload uint32) { decode(payload, r.bindings()) }

// ST8 holds the LDO voltage regulator settings.
type ST8 struct {
	RegVCO4V5Vout uint32

	PDRF2Disable bool
}

func (r *ST8) Addr() Addr { return AddrST8 }

func (r *ST8) bindings() []binding {
	return []binding{
		num("REG_VCO_4V5_VOUT", 2, 0, &r.RegVCO4V5Vout),
		flg("PD_RF2_DISABLE", 26, &r.PDRF2Disable),
	}
}

func (r *ST8) Encode() uint32        { return encode(r.bindings()) }
func (r *ST8) Decode(payload uint32) { decode(payload, r.bindings()) }

// ST9 is the reserved test and initialization register. It carries no
// documented fields; initialization writes its zero value.
type ST9 struct{}

func (r *ST9) Addr() Addr { return AddrST9 }

func (r *ST9) bindings() []binding { return nil }

func (r *ST9) Encode() uint32        { return encode(r.bindings()) }
func (r *ST9) Decode(payload uint32) { decode(payload, r.bindings()) }

// ST10 is the read-only status register: regulator startup and overcurrent
// flags, the lock detector and the VCO calibrator word.
type ST10 struct {
	VCOSel uint32
	Word   uint32

	RegDigStartup    bool
	RegRefStartup    bool
	RegRFStartup     bool
	RegVCOStartup    bool
	RegVCO4V5Startup bool
	RegDigOCP        bool
	RegRefOCP        bool
	RegRFOCP         bool
	RegVCOOCP        bool
	RegVCO4V5OCP     bool
	LockDet          bool
}

func (r *ST10) Addr() Addr { return AddrST10 }

func (r *ST10) bindings() []binding {
	return []binding{
		num("VCO_SEL", 2, 5, &r.VCOSel),
		num("WORD", 5, 0, &r.Word),
		flg("REG_DIG_STARTUP", 17, &r.RegDigStartup),
		flg("REG_REF_STARTUP", 16, &r.RegRefStartup),
		flg("REG_RF_STARTUP", 15, &r.RegRFStartup),
		flg("REG_VCO_STARTUP", 14, &r.RegVCOStartup),
		flg("REG_VCO_4V5_STARTUP", 13, &r.RegVCO4V5Startup),
		flg("REG_DIG_OCP", 12, &r.RegDigOCP),
		flg("REG_REF_OCP", 11, &r.RegRefOCP),
		flg("REG_RF_OCP", 10, &r.RegRFOCP),
		flg("REG_VCO_OCP", 9, &r.RegVCOOCP),
		flg("REG_VCO_4V5_OCP", 8, &r.RegVCO4V5OCP),
		flg("LOCK_DET", 7, &r.LockDet),
	}
}

func (r *ST10) Encode() uint32        { return encode(r.bindings()) }
func (r *ST10) Decode(payload uint32) { decode(payload, r.bindings()) }
