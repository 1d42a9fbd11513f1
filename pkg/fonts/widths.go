package fonts

// widths holds the advance width of each character code, in 1/1000 em,
// for every builtin font in index order.
var widths = [Count][256]int16{
	// Times-Roman
	{
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		247, 331, 406, 499, 499, 829, 776, 331, 331, 331, 499, 560, 247, 331, 247, 278,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 278, 278, 560, 560, 560, 441,
		918, 719, 666, 666, 719, 609, 556, 719, 719, 331, 388, 719, 609, 887, 719, 719,
		556, 719, 666, 556, 609, 719, 719, 940, 719, 719, 609, 331, 278, 331, 468, 499,
		331, 441, 499, 441, 499, 441, 331, 499, 499, 278, 278, 499, 278, 776, 499, 499,
		499, 499, 331, 388, 278, 499, 499, 719, 499, 499, 441, 476, 199, 476, 538, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 331, 499, 499, 163, 499, 499, 499, 499, 176, 441, 499, 331, 331, 556, 556,
		499, 499, 499, 499, 247, 499, 450, 349, 331, 441, 441, 499, 997, 997, 499, 441,
		499, 331, 331, 331, 331, 331, 331, 331, 331, 499, 331, 331, 499, 331, 331, 331,
		997, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 887, 499, 274, 499, 499, 499, 499, 609, 719, 887, 309, 499, 499, 499, 499,
		499, 666, 499, 499, 499, 278, 499, 499, 278, 499, 719, 499, 499, 499, 499, 499,
	},
	// Times-Bold
	{
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		247, 331, 551, 499, 499, 997, 829, 331, 331, 331, 499, 569, 247, 331, 247, 278,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 331, 331, 569, 569, 569, 499,
		926, 719, 666, 719, 719, 666, 609, 776, 776, 388, 499, 776, 666, 940, 719, 776,
		609, 776, 719, 556, 666, 719, 719, 997, 719, 719, 666, 331, 278, 331, 578, 499,
		331, 499, 556, 441, 556, 441, 331, 499, 556, 278, 331, 556, 278, 829, 556, 499,
		556, 556, 441, 388, 331, 556, 499, 719, 499, 499, 441, 393, 216, 393, 516, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 331, 499, 499, 163, 499, 499, 499, 499, 278, 499, 499, 331, 331, 556, 556,
		499, 499, 499, 499, 247, 499, 538, 349, 331, 499, 499, 499, 997, 997, 499, 499,
		499, 331, 331, 331, 331, 331, 331, 331, 331, 499, 331, 331, 499, 331, 331, 331,
		997, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 997, 499, 300, 499, 499, 499, 499, 666, 776, 997, 326, 499, 499, 499, 499,
		499, 719, 499, 499, 499, 278, 499, 499, 278, 499, 719, 556, 499, 499, 499, 499,
	},
	// Times-Italic
	{
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		247, 331, 419, 499, 499, 829, 776, 331, 331, 331, 499, 675, 247, 331, 247, 278,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 331, 331, 675, 675, 675, 499,
		918, 609, 609, 666, 719, 609, 609, 719, 719, 331, 441, 666, 556, 829, 666, 719,
		609, 719, 609, 499, 556, 719, 609, 829, 609, 556, 556, 388, 278, 388, 419, 499,
		331, 499, 499, 441, 499, 441, 278, 499, 499, 278, 278, 441, 278, 719, 499, 499,
		499, 499, 388, 388, 278, 499, 441, 666, 441, 441, 388, 397, 274, 397, 538, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 388, 499, 499, 163, 499, 499, 499, 499, 212, 556, 499, 331, 331, 499, 499,
		499, 499, 499, 499, 247, 499, 521, 349, 331, 556, 556, 499, 887, 997, 499, 499,
		499, 331, 331, 331, 331, 331, 331, 331, 331, 499, 331, 331, 499, 331, 331, 331,
		887, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 887, 499, 274, 499, 499, 499, 499, 556, 719, 940, 309, 499, 499, 499, 499,
		499, 666, 499, 499, 499, 278, 499, 499, 278, 499, 666, 499, 499, 499, 499, 499,
	},
	// Times-BoldItalic
	{
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		247, 388, 551, 499, 499, 829, 776, 331, 331, 331, 499, 569, 247, 331, 247, 278,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 331, 331, 569, 569, 569, 499,
		829, 666, 666, 666, 719, 666, 666, 719, 776, 388, 499, 666, 609, 887, 719, 719,
		609, 719, 666, 556, 609, 719, 666, 887, 666, 609, 609, 331, 278, 331, 569, 499,
		331, 499, 499, 441, 499, 441, 331, 499, 556, 278, 278, 499, 278, 776, 556, 499,
		499, 499, 388, 388, 278, 556, 441, 666, 499, 441, 388, 344, 216, 344, 569, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 388, 499, 499, 163, 499, 499, 499, 499, 278, 499, 499, 331, 331, 556, 556,
		499, 499, 499, 499, 247, 499, 499, 349, 331, 499, 499, 499, 997, 997, 499, 499,
		499, 331, 331, 331, 331, 331, 331, 331, 331, 499, 331, 331, 499, 331, 331, 331,
		997, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 940, 499, 265, 499, 499, 499, 499, 609, 719, 940, 300, 499, 499, 499, 499,
		499, 719, 499, 499, 499, 278, 499, 499, 278, 499, 719, 499, 499, 499, 499, 499,
	},
	// Helvetica
	{
		278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278,
		278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278,
		278, 278, 353, 556, 556, 887, 666, 221, 331, 331, 388, 582, 278, 331, 278, 278,
		556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 278, 278, 582, 582, 582, 556,
		1015, 666, 666, 719, 719, 666, 609, 776, 719, 278, 499, 666, 556, 829, 719, 776,
		666, 776, 719, 666, 609, 719, 666, 940, 666, 666, 609, 278, 278, 278, 468, 556,
		221, 556, 556, 499, 556, 556, 278, 556, 556, 221, 221, 499, 221, 829, 556, 556,
		556, 556, 331, 499, 278, 556, 499, 719, 499, 499, 499, 331, 256, 331, 582, 278,
		278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278,
		278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278,
		278, 331, 556, 556, 163, 556, 556, 556, 556, 190, 331, 556, 331, 331, 499, 499,
		278, 556, 556, 556, 278, 278, 534, 349, 221, 331, 331, 556, 997, 997, 278, 609,
		278, 331, 331, 331, 331, 331, 331, 331, 331, 278, 331, 331, 278, 331, 331, 331,
		997, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278,
		278, 997, 278, 366, 278, 278, 278, 278, 556, 776, 997, 362, 278, 278, 278, 278,
		278, 887, 278, 278, 278, 278, 278, 278, 221, 609, 940, 609, 278, 278, 278, 278,
	},
	// Helvetica-Bold
	{
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		278, 331, 472, 556, 556, 887, 719, 278, 331, 331, 388, 582, 278, 331, 278, 278,
		556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 331, 331, 582, 582, 582, 609,
		975, 719, 719, 719, 719, 666, 609, 776, 719, 278, 556, 719, 609, 829, 719, 776,
		666, 776, 719, 666, 609, 719, 666, 940, 666, 666, 609, 331, 278, 331, 582, 556,
		278, 556, 609, 556, 609, 556, 331, 609, 609, 278, 278, 556, 278, 887, 609, 609,
		609, 609, 388, 556, 331, 609, 556, 776, 556, 556, 499, 388, 278, 388, 582, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 331, 556, 556, 163, 556, 556, 556, 556, 234, 499, 556, 331, 331, 609, 609,
		499, 556, 556, 556, 278, 499, 556, 349, 278, 499, 499, 556, 997, 997, 499, 609,
		499, 331, 331, 331, 331, 331, 331, 331, 331, 499, 331, 331, 499, 331, 331, 331,
		997, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 997, 499, 366, 499, 499, 499, 499, 609, 776, 997, 362, 499, 499, 499, 499,
		499, 887, 499, 499, 499, 278, 499, 499, 278, 609, 940, 609, 499, 499, 499, 499,
	},
	// Helvetica-Oblique
	{
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		278, 278, 353, 556, 556, 887, 666, 221, 331, 331, 388, 582, 278, 331, 278, 278,
		556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 278, 278, 582, 582, 582, 556,
		1015, 666, 666, 719, 719, 666, 609, 776, 719, 278, 499, 666, 556, 829, 719, 776,
		666, 776, 719, 666, 609, 719, 666, 940, 666, 666, 609, 278, 278, 278, 468, 556,
		221, 556, 556, 499, 556, 556, 278, 556, 556, 221, 221, 499, 221, 829, 556, 556,
		556, 556, 331, 499, 278, 556, 499, 719, 499, 499, 499, 331, 256, 331, 582, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 331, 556, 556, 163, 556, 556, 556, 556, 190, 331, 556, 331, 331, 499, 499,
		499, 556, 556, 556, 278, 499, 534, 349, 221, 331, 331, 556, 997, 997, 499, 609,
		499, 331, 331, 331, 331, 331, 331, 331, 331, 499, 331, 331, 499, 331, 331, 331,
		997, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 997, 499, 366, 499, 499, 499, 499, 556, 776, 997, 362, 499, 499, 499, 499,
		499, 887, 499, 499, 499, 278, 499, 499, 221, 609, 940, 609, 499, 499, 499, 499,
	},
	// Helvetica-BoldOblique
	{
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		278, 331, 472, 556, 556, 887, 719, 278, 331, 331, 388, 582, 278, 331, 278, 278,
		556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 331, 331, 582, 582, 582, 609,
		975, 719, 719, 719, 719, 666, 609, 776, 719, 278, 556, 719, 609, 829, 719, 776,
		666, 776, 719, 666, 609, 719, 666, 940, 666, 666, 609, 331, 278, 331, 582, 556,
		278, 556, 609, 556, 609, 556, 331, 609, 609, 278, 278, 556, 278, 887, 609, 609,
		609, 609, 388, 556, 331, 609, 556, 776, 556, 556, 499, 388, 278, 388, 582, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 331, 556, 556, 163, 556, 556, 556, 556, 234, 499, 556, 331, 331, 609, 609,
		499, 556, 556, 556, 278, 499, 556, 349, 278, 499, 499, 556, 997, 997, 499, 609,
		499, 331, 331, 331, 331, 331, 331, 331, 331, 499, 331, 331, 499, 331, 331, 331,
		997, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 997, 499, 366, 499, 499, 499, 499, 609, 776, 997, 362, 499, 499, 499, 499,
		499, 887, 499, 499, 499, 278, 499, 499, 278, 609, 940, 609, 499, 499, 499, 499,
	},
	// Courier
	{
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
	},
	// Courier-Bold
	{
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
	},
	// Courier-Oblique
	{
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
	},
	// Courier-BoldOblique
	{
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
		499, 600, 600, 600, 600, 499, 600, 600, 600, 600, 600, 600, 600, 600, 499, 600,
		499, 600, 600, 600, 600, 600, 600, 600, 600, 499, 600, 600, 499, 600, 600, 600,
		600, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 499,
		499, 600, 499, 600, 499, 499, 499, 499, 600, 600, 600, 600, 499, 499, 499, 499,
		499, 600, 499, 499, 499, 600, 499, 499, 600, 600, 600, 600, 499, 499, 499, 499,
	},
	// Symbol
	{
		247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247,
		247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247,
		247, 331, 710, 499, 547, 829, 776, 437, 331, 331, 499, 547, 247, 547, 247, 278,
		499, 499, 499, 499, 499, 499, 499, 499, 499, 499, 278, 278, 547, 547, 547, 441,
		547, 719, 666, 719, 609, 609, 759, 600, 719, 331, 631, 719, 684, 887, 719, 719,
		768, 737, 556, 591, 609, 688, 437, 768, 644, 794, 609, 331, 860, 331, 657, 499,
		499, 631, 547, 547, 490, 437, 521, 410, 600, 326, 600, 547, 547, 574, 521, 547,
		547, 521, 547, 600, 437, 574, 710, 684, 490, 684, 490, 476, 199, 476, 547, 247,
		247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247,
		247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247, 247,
		759, 618, 243, 547, 163, 710, 499, 750, 750, 750, 750, 1041, 984, 600, 984, 600,
		397, 547, 410, 547, 547, 710, 490, 459, 547, 547, 547, 547, 997, 600, 997, 657,
		821, 684, 794, 984, 768, 768, 821, 768, 768, 710, 710, 710, 710, 710, 710, 710,
		768, 710, 790, 790, 887, 821, 547, 247, 710, 600, 600, 1041, 984, 600, 984, 600,
		490, 326, 790, 790, 785, 710, 384, 384, 384, 384, 384, 384, 490, 490, 490, 490,
		247, 326, 274, 684, 684, 684, 384, 384, 384, 384, 384, 384, 490, 490, 490, 247,
	},
	// ZapfDingbats
	{
		278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278,
		278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278,
		278, 971, 957, 971, 979, 715, 785, 790, 790, 688, 957, 935, 547, 851, 909, 931,
		909, 944, 971, 754, 843, 759, 759, 569, 675, 759, 759, 759, 750, 490, 551, 534,
		574, 688, 785, 785, 785, 790, 790, 790, 812, 821, 785, 838, 821, 829, 812, 829,
		922, 741, 719, 746, 790, 790, 693, 772, 768, 790, 759, 706, 706, 679, 697, 825,
		812, 785, 785, 706, 684, 693, 688, 785, 785, 710, 790, 781, 790, 869, 759, 759,
		759, 759, 759, 891, 891, 785, 781, 437, 137, 274, 415, 388, 388, 666, 666, 278,
		278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278,
		278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278, 278,
		278, 728, 543, 543, 909, 666, 759, 759, 772, 591, 693, 622, 785, 785, 785, 785,
		785, 785, 785, 785, 785, 785, 785, 785, 785, 785, 785, 785, 785, 785, 785, 785,
		785, 785, 785, 785, 785, 785, 785, 785, 785, 785, 785, 785, 785, 785, 785, 785,
		785, 785, 785, 785, 891, 834, 1015, 454, 746, 922, 746, 918, 926, 926, 926, 834,
		869, 825, 922, 922, 913, 926, 931, 459, 882, 834, 834, 865, 865, 693, 693, 874,
		278, 874, 759, 944, 768, 865, 768, 887, 966, 887, 829, 869, 926, 966, 918, 278,
	},
}
