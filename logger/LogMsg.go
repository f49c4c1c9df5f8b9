package logger

const GameStartMsg = "遊戲開始！ backend: %s, fps: %d"
const GameQuitMsg = "遊戲結束，最終比分 玩家 %d : %d 電腦"

const PlayerScoredMsg = "玩家得分！ 比分 玩家 %d : %d 電腦"
const OpponentScoredMsg = "電腦得分！ 比分 玩家 %d : %d 電腦"

const LevelIncreaseMsg = "難度提升 球速: %d,%d 玩家速度: %d"

const AudioUnavailableMsg = "音效裝置無法使用，改為靜音: %v"
const BackendFailedMsg = "畫面初始化失敗: %v"
const ConfigFailedMsg = "讀取設定檔失敗: %v"

const LevelReloadMsg = "log level 已更新為 %s"
