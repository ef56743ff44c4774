package bits

import "unsafe"

func BoolToBytes(data []bool) []byte {
	return unsafe.Slice(*(**byte)(unsafe.Pointer(&data)), len(data))
}

func Int32ToBytes(data []int32) []byte {
	return unsafe.Slice(*(**byte)(unsafe.Pointer(&data)), 4*len(data))
}

func Int64ToBytes(data []int64) []byte {
	return unsafe.Slice(*(**byte)(unsafe.Pointer(&data)), 8*len(data))
}

func Float32ToBytes(data []float32) []byte {
	return unsafe.Slice(*(**byte)(unsafe.Pointer(&data)), 4*len(data))
}

func Float64ToBytes(data []float64) []byte {
	return unsafe.Slice(*(**byte)(unsafe.Pointer(&data)), 8*len(data))
}

func BytesToInt32(data []byte) []int32 {
	return unsafe.Slice(*(**int32)(unsafe.Pointer(&data)), len(data)/4)
}

func BytesToInt64(data []byte) []int64 {
	return unsafe.Slice(*(**int64)(unsafe.Pointer(&data)), len(data)/8)
}

func BytesToBool(data []byte) []bool {
	return unsafe.Slice(*(**bool)(unsafe.Pointer(&data)), len(data))
}
