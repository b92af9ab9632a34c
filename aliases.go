package hxform

import "github.com/hupe1980/hxform/frame"

// Convenience aliases for every ordered frame pair. Each is equivalent to
// TransformBatch with the corresponding from/to frames.

// MAGtoGEI is equivalent to TransformBatch(vs, ts, frame.MAG, frame.GEI, opts...).
func MAGtoGEI(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.MAG, frame.GEI, opts...)
}

// MAGtoGEO is equivalent to TransformBatch(vs, ts, frame.MAG, frame.GEO, opts...).
func MAGtoGEO(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.MAG, frame.GEO, opts...)
}

// MAGtoGSE is equivalent to TransformBatch(vs, ts, frame.MAG, frame.GSE, opts...).
func MAGtoGSE(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.MAG, frame.GSE, opts...)
}

// MAGtoGSM is equivalent to TransformBatch(vs, ts, frame.MAG, frame.GSM, opts...).
func MAGtoGSM(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.MAG, frame.GSM, opts...)
}

// MAGtoSM is equivalent to TransformBatch(vs, ts, frame.MAG, frame.SM, opts...).
func MAGtoSM(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.MAG, frame.SM, opts...)
}

// GEItoMAG is equivalent to TransformBatch(vs, ts, frame.GEI, frame.MAG, opts...).
func GEItoMAG(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.GEI, frame.MAG, opts...)
}

// GEItoGEO is equivalent to TransformBatch(vs, ts, frame.GEI, frame.GEO, opts...).
func GEItoGEO(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.GEI, frame.GEO, opts...)
}

// GEItoGSE is equivalent to TransformBatch(vs, ts, frame.GEI, frame.GSE, opts...).
func GEItoGSE(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.GEI, frame.GSE, opts...)
}

// GEItoGSM is equivalent to TransformBatch(vs, ts, frame.GEI, frame.GSM, opts...).
func GEItoGSM(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.GEI, frame.GSM, opts...)
}

// GEItoSM is equivalent to TransformBatch(vs, ts, frame.GEI, frame.SM, opts...).
func GEItoSM(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.GEI, frame.SM, opts...)
}

// GEOtoMAG is equivalent to TransformBatch(vs, ts, frame.GEO, frame.MAG, opts...).
func GEOtoMAG(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.GEO, frame.MAG, opts...)
}

// GEOtoGEI is equivalent to TransformBatch(vs, ts, frame.GEO, frame.GEI, opts...).
func GEOtoGEI(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.GEO, frame.GEI, opts...)
}

// GEOtoGSE is equivalent to TransformBatch(vs, ts, frame.GEO, frame.GSE, opts...).
func GEOtoGSE(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.GEO, frame.GSE, opts...)
}

// GEOtoGSM is equivalent to TransformBatch(vs, ts, frame.GEO, frame.GSM, opts...).
func GEOtoGSM(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.GEO, frame.GSM, opts...)
}

// GEOtoSM is equivalent to TransformBatch(vs, ts, frame.GEO, frame.SM, opts...).
func GEOtoSM(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.GEO, frame.SM, opts...)
}

// GSEtoMAG is equivalent to TransformBatch(vs, ts, frame.GSE, frame.MAG, opts...).
func GSEtoMAG(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.GSE, frame.MAG, opts...)
}

// GSEtoGEI is equivalent to TransformBatch(vs, ts, frame.GSE, frame.GEI, opts...).
func GSEtoGEI(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.GSE, frame.GEI, opts...)
}

// GSEtoGEO is equivalent to TransformBatch(vs, ts, frame.GSE, frame.GEO, opts...).
func GSEtoGEO(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.GSE, frame.GEO, opts...)
}

// GSEtoGSM is equivalent to TransformBatch(vs, ts, frame.GSE, frame.GSM, opts...).
func GSEtoGSM(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.GSE, frame.GSM, opts...)
}

// GSEtoSM is equivalent to TransformBatch(vs, ts, frame.GSE, frame.SM, opts...).
func GSEtoSM(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.GSE, frame.SM, opts...)
}

// GSMtoMAG is equivalent to TransformBatch(vs, ts, frame.GSM, frame.MAG, opts...).
func GSMtoMAG(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.GSM, frame.MAG, opts...)
}

// GSMtoGEI is equivalent to TransformBatch(vs, ts, frame.GSM, frame.GEI, opts...).
func GSMtoGEI(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.GSM, frame.GEI, opts...)
}

// GSMtoGEO is equivalent to TransformBatch(vs, ts, frame.GSM, frame.GEO, opts...).
func GSMtoGEO(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.GSM, frame.GEO, opts...)
}

// GSMtoGSE is equivalent to TransformBatch(vs, ts, frame.GSM, frame.GSE, opts...).
func GSMtoGSE(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.GSM, frame.GSE, opts...)
}

// GSMtoSM is equivalent to TransformBatch(vs, ts, frame.GSM, frame.SM, opts...).
func GSMtoSM(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.GSM, frame.SM, opts...)
}

// SMtoMAG is equivalent to TransformBatch(vs, ts, frame.SM, frame.MAG, opts...).
func SMtoMAG(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.SM, frame.MAG, opts...)
}

// SMtoGEI is equivalent to TransformBatch(vs, ts, frame.SM, frame.GEI, opts...).
func SMtoGEI(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.SM, frame.GEI, opts...)
}

// SMtoGEO is equivalent to TransformBatch(vs, ts, frame.SM, frame.GEO, opts...).
func SMtoGEO(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.SM, frame.GEO, opts...)
}

// SMtoGSE is equivalent to TransformBatch(vs, ts, frame.SM, frame.GSE, opts...).
func SMtoGSE(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.SM, frame.GSE, opts...)
}

// SMtoGSM is equivalent to TransformBatch(vs, ts, frame.SM, frame.GSM, opts...).
func SMtoGSM(vs []Vector, ts []Time, opts ...Option) ([]Vector, error) {
	return TransformBatch(vs, ts, frame.SM, frame.GSM, opts...)
}
