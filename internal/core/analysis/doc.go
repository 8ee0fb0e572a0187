// Package analysis はスキルギャップ分析、適合度スコアリング、学習パス生成を行います。
//
// すべての関数は純粋かつ決定的です。同じ入力からは常に同じ結果が得られます。
package analysis
