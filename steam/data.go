package steam

// 水/水蒸气物性表（取自标准饱和与过热蒸汽表）
// Tabulated water/steam properties. Pressures in kPa, temperatures in °C,
// enthalpy kJ/kg, entropy kJ/(kg·K), specific volume m³/kg.

// saturation table, pressure entry. Columns:
// P, Tsat, vf, vg, hf, hg, sf, sg
var satData = [][8]float64{
	{1.0, 6.97, 0.001000, 129.19, 29.30, 2513.7, 0.1059, 8.9749},
	{2.0, 17.50, 0.001001, 66.990, 73.43, 2532.9, 0.2606, 8.7227},
	{3.0, 24.08, 0.001003, 45.654, 100.98, 2544.8, 0.3543, 8.5764},
	{5.0, 32.87, 0.001005, 28.185, 137.75, 2560.7, 0.4762, 8.3938},
	{7.5, 40.29, 0.001008, 19.233, 168.75, 2574.0, 0.5763, 8.2501},
	{8.0, 41.51, 0.0010084, 18.103, 173.88, 2577.0, 0.5926, 8.2287},
	{10.0, 45.81, 0.001010, 14.670, 191.81, 2584.6, 0.6492, 8.1488},
	{15.0, 53.97, 0.001014, 10.020, 225.94, 2598.3, 0.7549, 8.0071},
	{20.0, 60.06, 0.001017, 7.6481, 251.42, 2608.9, 0.8320, 7.9073},
	{25.0, 64.96, 0.001020, 6.2034, 271.96, 2617.5, 0.8932, 7.8302},
	{30.0, 69.09, 0.001022, 5.2287, 289.27, 2624.6, 0.9441, 7.7675},
	{40.0, 75.86, 0.001026, 3.9933, 317.62, 2636.1, 1.0261, 7.6691},
	{50.0, 81.32, 0.001030, 3.2403, 340.54, 2645.2, 1.0912, 7.5931},
	{75.0, 91.76, 0.001037, 2.2172, 384.44, 2662.4, 1.2132, 7.4558},
	{100.0, 99.61, 0.001043, 1.6941, 417.51, 2675.0, 1.3028, 7.3589},
	{125.0, 105.97, 0.001048, 1.3750, 444.36, 2684.9, 1.3741, 7.2841},
	{150.0, 111.35, 0.001053, 1.1594, 467.13, 2693.1, 1.4337, 7.2231},
	{175.0, 116.04, 0.001057, 1.0037, 487.01, 2700.2, 1.4850, 7.1716},
	{200.0, 120.21, 0.001061, 0.88578, 504.71, 2706.3, 1.5302, 7.1270},
	{250.0, 127.41, 0.001067, 0.71873, 535.35, 2716.5, 1.6072, 7.0525},
	{300.0, 133.52, 0.001073, 0.60582, 561.43, 2724.9, 1.6717, 6.9921},
	{400.0, 143.61, 0.001084, 0.46242, 604.66, 2738.1, 1.7765, 6.8955},
	{500.0, 151.83, 0.001093, 0.37483, 640.09, 2748.1, 1.8604, 6.8207},
	{600.0, 158.83, 0.001101, 0.31560, 670.38, 2756.2, 1.9308, 6.7593},
	{800.0, 170.41, 0.001115, 0.24035, 720.87, 2768.3, 2.0457, 6.6616},
	{1000.0, 179.88, 0.001127, 0.19437, 762.51, 2777.1, 2.1381, 6.5850},
	{1200.0, 187.96, 0.001138, 0.16326, 798.33, 2783.8, 2.2159, 6.5217},
	{1400.0, 195.04, 0.001149, 0.14078, 830.07, 2788.9, 2.2835, 6.4675},
	{1600.0, 201.37, 0.001159, 0.12374, 858.44, 2792.8, 2.3435, 6.4200},
	{1800.0, 207.11, 0.001168, 0.11037, 884.47, 2795.9, 2.3975, 6.3775},
	{2000.0, 212.38, 0.001177, 0.099587, 908.47, 2798.3, 2.4468, 6.3390},
	{2500.0, 223.95, 0.001197, 0.079949, 961.87, 2801.9, 2.5543, 6.2558},
	{3000.0, 233.85, 0.001217, 0.066667, 1008.3, 2803.2, 2.6454, 6.1856},
	{3500.0, 242.56, 0.001235, 0.057061, 1049.7, 2802.7, 2.7253, 6.1244},
	{4000.0, 250.35, 0.001252, 0.049779, 1087.4, 2800.8, 2.7966, 6.0696},
	{5000.0, 263.94, 0.001286, 0.039448, 1154.5, 2794.2, 2.9207, 5.9737},
	{6000.0, 275.59, 0.001319, 0.032449, 1213.8, 2784.6, 3.0275, 5.8902},
	{7000.0, 285.83, 0.001352, 0.027378, 1267.5, 2772.6, 3.1220, 5.8148},
	{8000.0, 295.06, 0.001384, 0.023520, 1316.6, 2758.0, 3.2068, 5.7432},
	{9000.0, 303.35, 0.001418, 0.020489, 1363.7, 2742.9, 3.2866, 5.6791},
	{10000.0, 311.00, 0.001452, 0.018028, 1407.8, 2725.5, 3.3603, 5.6159},
	{11000.0, 318.08, 0.001488, 0.015988, 1450.2, 2706.3, 3.4299, 5.5525},
	{12000.0, 324.68, 0.001526, 0.014264, 1491.3, 2685.4, 3.4964, 5.4939},
	{13000.0, 330.85, 0.001566, 0.012781, 1531.4, 2662.7, 3.5606, 5.4336},
	{14000.0, 336.67, 0.001610, 0.011487, 1571.0, 2637.9, 3.6232, 5.3728},
	{15000.0, 342.16, 0.001657, 0.010341, 1610.3, 2610.8, 3.6848, 5.3108},
	{16000.0, 347.36, 0.001710, 0.009312, 1649.9, 2581.0, 3.7461, 5.2466},
	{18000.0, 356.99, 0.001840, 0.007504, 1732.2, 2510.0, 3.8722, 5.1061},
	{20000.0, 365.75, 0.002038, 0.005870, 1827.2, 2412.1, 4.0146, 4.9310},
	{22000.0, 373.71, 0.002704, 0.003648, 2011.3, 2173.1, 4.2942, 4.5446},
	{22064.0, 373.95, 0.003106, 0.003106, 2084.3, 2084.3, 4.4070, 4.4070},
}

// superheated columns. Each column is one pressure with its own
// temperature rows starting at the saturated-vapor anchor, as in a
// printed table. Row columns: T, v, h, s.
type supColData struct {
	p    float64
	rows [][4]float64
}

var supData = []supColData{
	{5.0, [][4]float64{
		{32.87, 28.185, 2560.7, 8.3938},
		{100.0, 34.418, 2688.0, 8.7688},
		{150.0, 39.041, 2783.3, 9.0088},
		{200.0, 43.661, 2879.8, 9.2243},
		{250.0, 48.280, 2977.5, 9.4209},
		{300.0, 52.898, 3076.8, 9.6021},
		{400.0, 62.132, 3280.0, 9.9288},
		{500.0, 71.364, 3489.3, 10.2192},
		{600.0, 80.596, 3706.4, 10.4825},
		{700.0, 89.826, 3930.0, 10.7250},
	}},
	{10.0, [][4]float64{
		{45.81, 14.670, 2584.6, 8.1488},
		{100.0, 17.196, 2687.5, 8.4489},
		{150.0, 19.513, 2783.0, 8.6893},
		{200.0, 21.826, 2879.6, 8.9049},
		{250.0, 24.136, 2977.4, 9.1015},
		{300.0, 26.446, 3076.7, 9.2827},
		{400.0, 31.063, 3279.9, 9.6094},
		{500.0, 35.680, 3489.2, 9.8998},
		{600.0, 40.296, 3706.3, 10.1631},
		{700.0, 44.911, 3929.9, 10.4056},
	}},
	{50.0, [][4]float64{
		{81.32, 3.2403, 2645.2, 7.5931},
		{100.0, 3.4187, 2682.4, 7.6953},
		{150.0, 3.8897, 2780.2, 7.9413},
		{200.0, 4.3562, 2877.8, 8.1592},
		{250.0, 4.8206, 2976.2, 8.3568},
		{300.0, 5.2841, 3075.8, 8.5387},
		{400.0, 6.2094, 3279.3, 8.8659},
		{500.0, 7.1338, 3488.9, 9.1566},
		{600.0, 8.0577, 3706.0, 9.4201},
		{700.0, 8.9813, 3929.7, 9.6626},
	}},
	{100.0, [][4]float64{
		{99.61, 1.6941, 2675.0, 7.3589},
		{100.0, 1.6959, 2675.8, 7.3611},
		{150.0, 1.9367, 2776.6, 7.6148},
		{200.0, 2.1724, 2875.5, 7.8356},
		{250.0, 2.4062, 2974.5, 8.0346},
		{300.0, 2.6389, 3074.5, 8.2172},
		{400.0, 3.1027, 3278.6, 8.5452},
		{500.0, 3.5655, 3488.5, 8.8362},
		{600.0, 4.0279, 3705.6, 9.0999},
		{700.0, 4.4900, 3929.4, 9.3424},
	}},
	{500.0, [][4]float64{
		{151.83, 0.37483, 2748.1, 6.8207},
		{200.0, 0.42503, 2855.8, 7.0610},
		{250.0, 0.47443, 2961.0, 7.2725},
		{300.0, 0.52261, 3064.6, 7.4614},
		{350.0, 0.57015, 3168.1, 7.6346},
		{400.0, 0.61731, 3272.4, 7.7956},
		{500.0, 0.71095, 3484.5, 8.0893},
		{600.0, 0.80409, 3702.5, 8.3544},
		{700.0, 0.89696, 3927.0, 8.5978},
	}},
	{1000.0, [][4]float64{
		{179.88, 0.19437, 2777.1, 6.5850},
		{200.0, 0.20602, 2828.3, 6.6956},
		{250.0, 0.23275, 2943.1, 6.9265},
		{300.0, 0.25799, 3051.6, 7.1246},
		{350.0, 0.28250, 3158.2, 7.3029},
		{400.0, 0.30661, 3264.5, 7.4670},
		{500.0, 0.35411, 3479.1, 7.7642},
		{600.0, 0.40111, 3698.6, 8.0310},
		{700.0, 0.44783, 3924.1, 8.2755},
	}},
	{2000.0, [][4]float64{
		{212.38, 0.099587, 2798.3, 6.3390},
		{250.0, 0.11144, 2903.2, 6.5475},
		{300.0, 0.12551, 3023.5, 6.7664},
		{350.0, 0.13860, 3137.0, 6.9563},
		{400.0, 0.15122, 3247.6, 7.1271},
		{500.0, 0.17568, 3467.6, 7.4317},
		{600.0, 0.19962, 3690.1, 7.7024},
		{700.0, 0.22326, 3917.6, 7.9487},
	}},
	{4000.0, [][4]float64{
		{250.35, 0.049779, 2800.8, 6.0696},
		{300.0, 0.058870, 2961.7, 6.3642},
		{350.0, 0.066473, 3092.5, 6.5829},
		{400.0, 0.073431, 3213.6, 6.7690},
		{450.0, 0.080043, 3330.3, 6.9363},
		{500.0, 0.086442, 3445.3, 7.0901},
		{600.0, 0.098859, 3674.4, 7.3688},
		{700.0, 0.110980, 3905.9, 7.6198},
	}},
	{6000.0, [][4]float64{
		{275.59, 0.032449, 2784.6, 5.8902},
		{300.0, 0.036189, 2884.2, 6.0674},
		{350.0, 0.042251, 3043.0, 6.3335},
		{400.0, 0.047419, 3177.2, 6.5408},
		{450.0, 0.052214, 3301.8, 6.7193},
		{500.0, 0.056671, 3422.2, 6.8803},
		{600.0, 0.065551, 3658.4, 7.1677},
		{700.0, 0.074010, 3894.2, 7.4234},
	}},
	{8000.0, [][4]float64{
		{295.06, 0.023520, 2758.0, 5.7432},
		{300.0, 0.024264, 2785.0, 5.7906},
		{350.0, 0.029950, 2987.3, 6.1301},
		{400.0, 0.034320, 3138.3, 6.3634},
		{450.0, 0.038166, 3272.0, 6.5551},
		{500.0, 0.041770, 3398.3, 6.7240},
		{600.0, 0.048450, 3642.0, 7.0206},
		{700.0, 0.054810, 3882.4, 7.2812},
	}},
	{10000.0, [][4]float64{
		{311.00, 0.018028, 2725.5, 5.6159},
		{350.0, 0.022420, 2923.4, 5.9443},
		{400.0, 0.026410, 3096.5, 6.2120},
		{450.0, 0.029782, 3240.9, 6.4190},
		{500.0, 0.032790, 3373.7, 6.5966},
		{600.0, 0.038370, 3625.3, 6.9029},
		{700.0, 0.043580, 3870.5, 7.1687},
	}},
	{14000.0, [][4]float64{
		{336.67, 0.011487, 2637.9, 5.3728},
		{350.0, 0.013224, 2752.6, 5.5594},
		{400.0, 0.017218, 3001.1, 5.9423},
		{450.0, 0.020074, 3172.9, 6.1898},
		{500.0, 0.022512, 3322.3, 6.3883},
		{600.0, 0.026845, 3590.8, 6.7163},
		{700.0, 0.030763, 3845.9, 6.9941},
	}},
	{20000.0, [][4]float64{
		{365.75, 0.005870, 2412.1, 4.9310},
		{400.0, 0.009950, 2816.8, 5.5526},
		{450.0, 0.012720, 3060.1, 5.9017},
		{500.0, 0.014790, 3238.2, 6.1401},
		{600.0, 0.018185, 3536.8, 6.5048},
		{700.0, 0.021133, 3809.0, 6.7993},
	}},
}
