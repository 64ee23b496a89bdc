package ioporder

// tableEntry is one row of a shipped ordering. The legacy column holds the
// fractional order used by old databases and is kept only for migration.
type tableEntry struct {
	legacy float64
	op     string
}

var builtinTables = map[Version][]tableEntry{
	Legacy: legacyOrder,
	V30:    v30Order,
	V30JPG: v30JpgOrder,
	V50:    v50Order,
	V50JPG: v50JpgOrder,
}

var legacyOrder = []tableEntry{
	{1.0, "rawprepare"},
	{2.0, "invert"},
	{3.0, "temperature"},
	{3.1, "rasterfile"},
	{4.0, "highlights"},
	{5.0, "cacorrect"},
	{6.0, "hotpixels"},
	{7.0, "rawdenoise"},
	{8.0, "demosaic"},
	{9.0, "mask_manager"},
	{10.0, "denoiseprofile"},
	{11.0, "tonemap"},
	{12.0, "exposure"},
	{13.0, "spots"},
	{14.0, "retouch"},
	{15.0, "lens"},
	{15.5, "cacorrectrgb"},
	{16.0, "ashift"},
	{17.0, "liquify"},
	{18.0, "rotatepixels"},
	{19.0, "scalepixels"},
	{20.0, "flip"},
	{20.5, "enlargecanvas"},
	{21.0, "clipping"},
	{21.5, "toneequal"},
	{21.7, "crop"},
	{21.9, "overlay"},
	{22.0, "graduatednd"},
	{23.0, "basecurve"},
	{24.0, "bilateral"},
	{25.0, "profile_gamma"},
	{26.0, "hazeremoval"},
	{27.0, "colorin"},
	{27.5, "channelmixerrgb"},
	{27.5, "diffuse"},
	{27.5, "censorize"},
	{27.5, "negadoctor"},
	{27.5, "blurs"},
	{27.5, "basicadj"},
	{27.5, "primaries"},
	{28.0, "colorreconstruct"},
	{29.0, "colorchecker"},
	{30.0, "defringe"},
	{31.0, "equalizer"},
	{32.0, "vibrance"},
	{33.0, "colorbalance"},
	{33.2, "colorequal"},
	{33.5, "colorbalancergb"},
	{34.0, "colorize"},
	{35.0, "colortransfer"},
	{36.0, "colormapping"},
	{37.0, "bloom"},
	{38.0, "nlmeans"},
	{39.0, "globaltonemap"},
	{40.0, "shadhi"},
	{41.0, "atrous"},
	{42.0, "bilat"},
	{43.0, "colorzones"},
	{44.0, "lowlight"},
	{45.0, "monochrome"},
	{45.3, "sigmoid"},
	{45.5, "agx"},
	{46.0, "filmic"},
	{46.5, "filmicrgb"},
	{47.0, "colisa"},
	{48.0, "zonesystem"},
	{49.0, "tonecurve"},
	{50.0, "levels"},
	{50.2, "rgblevels"},
	{50.5, "rgbcurve"},
	{51.0, "relight"},
	{52.0, "colorcorrection"},
	{53.0, "sharpen"},
	{54.0, "lowpass"},
	{55.0, "highpass"},
	{56.0, "grain"},
	{56.5, "lut3d"},
	{57.0, "colorcontrast"},
	{58.0, "colorout"},
	{59.0, "channelmixer"},
	{60.0, "soften"},
	{61.0, "vignette"},
	{62.0, "splittoning"},
	{63.0, "velvia"},
	{64.0, "clahe"},
	{65.0, "finalscale"},
	{66.0, "overexposed"},
	{67.0, "rawoverexposed"},
	{67.5, "dither"},
	{68.0, "borders"},
	{69.0, "watermark"},
	{71.0, "gamma"},
}

var v30Order = []tableEntry{
	{1.0, "rawprepare"},
	{2.0, "invert"},
	{3.0, "temperature"},
	{3.1, "rasterfile"},
	{4.0, "highlights"},
	{5.0, "cacorrect"},
	{6.0, "hotpixels"},
	{7.0, "rawdenoise"},
	{8.0, "demosaic"},
	{9.0, "denoiseprofile"},
	{10.0, "bilateral"},
	{11.0, "rotatepixels"},
	{12.0, "scalepixels"},
	{13.0, "lens"},
	{13.5, "cacorrectrgb"},
	{14.0, "hazeremoval"},
	{15.0, "ashift"},
	{16.0, "flip"},
	{16.5, "enlargecanvas"},
	{16.7, "overlay"},
	{17.0, "clipping"},
	{18.0, "liquify"},
	{19.0, "spots"},
	{20.0, "retouch"},
	{21.0, "exposure"},
	{22.0, "mask_manager"},
	{23.0, "tonemap"},
	{24.0, "toneequal"},
	{24.5, "crop"},
	{25.0, "graduatednd"},
	{26.0, "profile_gamma"},
	{27.0, "equalizer"},
	{28.0, "colorin"},
	{28.5, "channelmixerrgb"},
	{28.5, "diffuse"},
	{28.5, "censorize"},
	{28.5, "negadoctor"},
	{28.5, "blurs"},
	{28.5, "primaries"},
	{29.0, "nlmeans"},
	{30.0, "colorchecker"},
	{31.0, "defringe"},
	{32.0, "atrous"},
	{33.0, "lowpass"},
	{34.0, "highpass"},
	{35.0, "sharpen"},
	{37.0, "colortransfer"},
	{38.0, "colormapping"},
	{39.0, "channelmixer"},
	{40.0, "basicadj"},
	{41.0, "colorbalance"},
	{41.2, "colorequal"},
	{41.5, "colorbalancergb"},
	{42.0, "rgbcurve"},
	{43.0, "rgblevels"},
	{44.0, "basecurve"},
	{45.0, "filmic"},
	{45.3, "sigmoid"},
	{45.5, "agx"},
	{46.0, "filmicrgb"},
	{36.0, "lut3d"},
	{47.0, "colisa"},
	{48.0, "tonecurve"},
	{49.0, "levels"},
	{50.0, "shadhi"},
	{51.0, "zonesystem"},
	{52.0, "globaltonemap"},
	{53.0, "relight"},
	{54.0, "bilat"},
	{55.0, "colorcorrection"},
	{56.0, "colorcontrast"},
	{57.0, "velvia"},
	{58.0, "vibrance"},
	{60.0, "colorzones"},
	{61.0, "bloom"},
	{62.0, "colorize"},
	{63.0, "lowlight"},
	{64.0, "monochrome"},
	{65.0, "grain"},
	{66.0, "soften"},
	{67.0, "splittoning"},
	{68.0, "vignette"},
	{69.0, "colorreconstruct"},
	{70.0, "colorout"},
	{71.0, "clahe"},
	{72.0, "finalscale"},
	{73.0, "overexposed"},
	{74.0, "rawoverexposed"},
	{75.0, "dither"},
	{76.0, "borders"},
	{77.0, "watermark"},
	{78.0, "gamma"},
}

// v5.0 RAW moves finalscale before colorout, otherwise same as v3.0.
var v50Order = []tableEntry{
	{1.0, "rawprepare"},
	{2.0, "invert"},
	{3.0, "temperature"},
	{3.1, "rasterfile"},
	{4.0, "highlights"},
	{5.0, "cacorrect"},
	{6.0, "hotpixels"},
	{7.0, "rawdenoise"},
	{8.0, "demosaic"},
	{9.0, "denoiseprofile"},
	{10.0, "bilateral"},
	{11.0, "rotatepixels"},
	{12.0, "scalepixels"},
	{13.0, "lens"},
	{13.5, "cacorrectrgb"},
	{14.0, "hazeremoval"},
	{15.0, "ashift"},
	{16.0, "flip"},
	{16.5, "enlargecanvas"},
	{16.7, "overlay"},
	{17.0, "clipping"},
	{18.0, "liquify"},
	{19.0, "spots"},
	{20.0, "retouch"},
	{21.0, "exposure"},
	{22.0, "mask_manager"},
	{23.0, "tonemap"},
	{24.0, "toneequal"},
	{24.5, "crop"},
	{25.0, "graduatednd"},
	{26.0, "profile_gamma"},
	{27.0, "equalizer"},
	{28.0, "colorin"},
	{28.5, "channelmixerrgb"},
	{28.5, "diffuse"},
	{28.5, "censorize"},
	{28.5, "negadoctor"},
	{28.5, "blurs"},
	{28.5, "primaries"},
	{29.0, "nlmeans"},
	{30.0, "colorchecker"},
	{31.0, "defringe"},
	{32.0, "atrous"},
	{33.0, "lowpass"},
	{34.0, "highpass"},
	{35.0, "sharpen"},
	{37.0, "colortransfer"},
	{38.0, "colormapping"},
	{39.0, "channelmixer"},
	{40.0, "basicadj"},
	{41.0, "colorbalance"},
	{41.2, "colorequal"},
	{41.5, "colorbalancergb"},
	{42.0, "rgbcurve"},
	{43.0, "rgblevels"},
	{44.0, "basecurve"},
	{45.0, "filmic"},
	{45.3, "sigmoid"},
	{45.5, "agx"},
	{46.0, "filmicrgb"},
	{36.0, "lut3d"},
	{47.0, "colisa"},
	{48.0, "tonecurve"},
	{49.0, "levels"},
	{50.0, "shadhi"},
	{51.0, "zonesystem"},
	{52.0, "globaltonemap"},
	{53.0, "relight"},
	{54.0, "bilat"},
	{55.0, "colorcorrection"},
	{56.0, "colorcontrast"},
	{57.0, "velvia"},
	{58.0, "vibrance"},
	{60.0, "colorzones"},
	{61.0, "bloom"},
	{62.0, "colorize"},
	{63.0, "lowlight"},
	{64.0, "monochrome"},
	{65.0, "grain"},
	{66.0, "soften"},
	{67.0, "splittoning"},
	{68.0, "vignette"},
	{69.0, "colorreconstruct"},
	{69.4, "finalscale"},
	{70.0, "colorout"},
	{71.0, "clahe"},
	{73.0, "overexposed"},
	{74.0, "rawoverexposed"},
	{75.0, "dither"},
	{76.0, "borders"},
	{77.0, "watermark"},
	{78.0, "gamma"},
}

// v3.0 JPEG runs colorin right after demosaic for non-linear input.
var v30JpgOrder = []tableEntry{
	{1.0, "rawprepare"},
	{2.0, "invert"},
	{3.0, "temperature"},
	{3.1, "rasterfile"},
	{4.0, "highlights"},
	{5.0, "cacorrect"},
	{6.0, "hotpixels"},
	{7.0, "rawdenoise"},
	{8.0, "demosaic"},
	{28.0, "colorin"},
	{28.0, "denoiseprofile"},
	{28.0, "bilateral"},
	{28.0, "rotatepixels"},
	{28.0, "scalepixels"},
	{28.0, "lens"},
	{28.0, "cacorrectrgb"},
	{28.0, "hazeremoval"},
	{28.0, "ashift"},
	{28.0, "flip"},
	{28.0, "enlargecanvas"},
	{28.0, "overlay"},
	{28.0, "clipping"},
	{28.0, "liquify"},
	{28.0, "spots"},
	{28.0, "retouch"},
	{28.0, "exposure"},
	{28.0, "mask_manager"},
	{28.0, "tonemap"},
	{28.0, "toneequal"},
	{28.0, "crop"},
	{28.0, "graduatednd"},
	{28.0, "profile_gamma"},
	{28.0, "equalizer"},
	{28.5, "channelmixerrgb"},
	{28.5, "diffuse"},
	{28.5, "censorize"},
	{28.5, "negadoctor"},
	{28.5, "blurs"},
	{28.5, "primaries"},
	{29.0, "nlmeans"},
	{30.0, "colorchecker"},
	{31.0, "defringe"},
	{32.0, "atrous"},
	{33.0, "lowpass"},
	{34.0, "highpass"},
	{35.0, "sharpen"},
	{37.0, "colortransfer"},
	{38.0, "colormapping"},
	{39.0, "channelmixer"},
	{40.0, "basicadj"},
	{41.0, "colorbalance"},
	{41.2, "colorequal"},
	{41.5, "colorbalancergb"},
	{42.0, "rgbcurve"},
	{43.0, "rgblevels"},
	{44.0, "basecurve"},
	{45.0, "filmic"},
	{45.3, "sigmoid"},
	{45.5, "agx"},
	{46.0, "filmicrgb"},
	{36.0, "lut3d"},
	{47.0, "colisa"},
	{48.0, "tonecurve"},
	{49.0, "levels"},
	{50.0, "shadhi"},
	{51.0, "zonesystem"},
	{52.0, "globaltonemap"},
	{53.0, "relight"},
	{54.0, "bilat"},
	{55.0, "colorcorrection"},
	{56.0, "colorcontrast"},
	{57.0, "velvia"},
	{58.0, "vibrance"},
	{60.0, "colorzones"},
	{61.0, "bloom"},
	{62.0, "colorize"},
	{63.0, "lowlight"},
	{64.0, "monochrome"},
	{65.0, "grain"},
	{66.0, "soften"},
	{67.0, "splittoning"},
	{68.0, "vignette"},
	{69.0, "colorreconstruct"},
	{70.0, "colorout"},
	{71.0, "clahe"},
	{72.0, "finalscale"},
	{73.0, "overexposed"},
	{74.0, "rawoverexposed"},
	{75.0, "dither"},
	{76.0, "borders"},
	{77.0, "watermark"},
	{78.0, "gamma"},
}

// v5.0 JPEG combines the early colorin with the moved finalscale.
var v50JpgOrder = []tableEntry{
	{1.0, "rawprepare"},
	{2.0, "invert"},
	{3.0, "temperature"},
	{3.1, "rasterfile"},
	{4.0, "highlights"},
	{5.0, "cacorrect"},
	{6.0, "hotpixels"},
	{7.0, "rawdenoise"},
	{8.0, "demosaic"},
	{28.0, "colorin"},
	{28.0, "denoiseprofile"},
	{28.0, "bilateral"},
	{28.0, "rotatepixels"},
	{28.0, "scalepixels"},
	{28.0, "lens"},
	{28.0, "cacorrectrgb"},
	{28.0, "hazeremoval"},
	{28.0, "ashift"},
	{28.0, "flip"},
	{28.0, "enlargecanvas"},
	{28.0, "overlay"},
	{28.0, "clipping"},
	{28.0, "liquify"},
	{28.0, "spots"},
	{28.0, "retouch"},
	{28.0, "exposure"},
	{28.0, "mask_manager"},
	{28.0, "tonemap"},
	{28.0, "toneequal"},
	{28.0, "crop"},
	{28.0, "graduatednd"},
	{28.0, "profile_gamma"},
	{28.0, "equalizer"},
	{28.5, "channelmixerrgb"},
	{28.5, "diffuse"},
	{28.5, "censorize"},
	{28.5, "negadoctor"},
	{28.5, "blurs"},
	{28.5, "primaries"},
	{29.0, "nlmeans"},
	{30.0, "colorchecker"},
	{31.0, "defringe"},
	{32.0, "atrous"},
	{33.0, "lowpass"},
	{34.0, "highpass"},
	{35.0, "sharpen"},
	{37.0, "colortransfer"},
	{38.0, "colormapping"},
	{39.0, "channelmixer"},
	{40.0, "basicadj"},
	{41.0, "colorbalance"},
	{41.2, "colorequal"},
	{41.5, "colorbalancergb"},
	{42.0, "rgbcurve"},
	{43.0, "rgblevels"},
	{44.0, "basecurve"},
	{45.0, "filmic"},
	{45.3, "sigmoid"},
	{45.5, "agx"},
	{46.0, "filmicrgb"},
	{36.0, "lut3d"},
	{47.0, "colisa"},
	{48.0, "tonecurve"},
	{49.0, "levels"},
	{50.0, "shadhi"},
	{51.0, "zonesystem"},
	{52.0, "globaltonemap"},
	{53.0, "relight"},
	{54.0, "bilat"},
	{55.0, "colorcorrection"},
	{56.0, "colorcontrast"},
	{57.0, "velvia"},
	{58.0, "vibrance"},
	{60.0, "colorzones"},
	{61.0, "bloom"},
	{62.0, "colorize"},
	{63.0, "lowlight"},
	{64.0, "monochrome"},
	{65.0, "grain"},
	{66.0, "soften"},
	{67.0, "splittoning"},
	{68.0, "vignette"},
	{69.0, "colorreconstruct"},
	{69.5, "finalscale"},
	{70.0, "colorout"},
	{71.0, "clahe"},
	{73.0, "overexposed"},
	{74.0, "rawoverexposed"},
	{75.0, "dither"},
	{76.0, "borders"},
	{77.0, "watermark"},
	{78.0, "gamma"},
}
