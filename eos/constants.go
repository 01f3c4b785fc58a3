package eos

// 一般気体定数, J/(mol K)
const R = 8.31446261815324

// Peng-Robinson 式の引力項係数
const omega_a = 0.45724

// Peng-Robinson 式の排除体積係数
const omega_b = 0.07780

// Peng-Robinson 式の臨界圧縮係数
const Zc = 0.30740

// 臨界点における充填率 b/V
const criticalPacking = omega_b / Zc

// A, B の上下限（オーバーフロー防止）
const clipLimit = 1e6

// 気相根と液相根を別の根とみなす最小の差
const distinctRootGap = 1e-9
